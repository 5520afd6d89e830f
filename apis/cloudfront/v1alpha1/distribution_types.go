/*
Copyright 2021 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Origin is the content origin the distribution serves from, typically the
// regional endpoint of an S3 bucket.
type Origin struct {
	// ID uniquely identifies the origin within the distribution. Defaults
	// to the origin domain name.
	// +optional
	ID *string `json:"id,omitempty"`

	// DomainName is the DNS name of the origin, e.g.
	// bucket.s3.region.amazonaws.com for an S3 origin.
	// +optional
	DomainName *string `json:"domainName,omitempty"`

	// DomainNameRef references a Bucket to retrieve its regional domain name
	// +optional
	DomainNameRef *xpv1.Reference `json:"domainNameRef,omitempty"`

	// DomainNameSelector selects a reference to a Bucket to retrieve its
	// regional domain name
	// +optional
	DomainNameSelector *xpv1.Selector `json:"domainNameSelector,omitempty"`

	// OriginPath causes CloudFront to request content from a directory of
	// the origin instead of its root.
	// +optional
	OriginPath *string `json:"originPath,omitempty"`

	// OriginAccessControlID is the identity CloudFront signs origin
	// requests with.
	// +optional
	OriginAccessControlID *string `json:"originAccessControlId,omitempty"`

	// OriginAccessControlIDRef references an OriginAccessControl to
	// retrieve its ID
	// +optional
	OriginAccessControlIDRef *xpv1.Reference `json:"originAccessControlIdRef,omitempty"`

	// OriginAccessControlIDSelector selects a reference to an
	// OriginAccessControl to retrieve its ID
	// +optional
	OriginAccessControlIDSelector *xpv1.Selector `json:"originAccessControlIdSelector,omitempty"`
}

// DefaultCacheBehavior is the cache behavior applied to requests that no
// other behavior matches. With a single origin it is the only behavior.
type DefaultCacheBehavior struct {
	// ViewerProtocolPolicy is the protocol viewers must use to access the
	// content.
	// +kubebuilder:validation:Enum=allow-all;https-only;redirect-to-https
	ViewerProtocolPolicy string `json:"viewerProtocolPolicy"`

	// AllowedMethods are the HTTP methods CloudFront processes and forwards
	// to the origin. Defaults to GET and HEAD.
	// +optional
	AllowedMethods []string `json:"allowedMethods,omitempty"`

	// CachedMethods are the HTTP methods whose responses CloudFront caches.
	// Defaults to GET and HEAD.
	// +optional
	CachedMethods []string `json:"cachedMethods,omitempty"`

	// CachePolicyID is the cache policy attached to this behavior, for
	// example one of the managed caching policies.
	// +optional
	CachePolicyID *string `json:"cachePolicyId,omitempty"`

	// Compress enables automatic compression of served content.
	// +optional
	Compress *bool `json:"compress,omitempty"`
}

// ViewerCertificate determines the certificate the distribution presents to
// viewers over TLS.
type ViewerCertificate struct {
	// ACMCertificateARN is the ARN of an issued ACM certificate covering
	// the distribution aliases. The certificate must live in us-east-1.
	// +optional
	ACMCertificateARN *string `json:"acmCertificateARN,omitempty"`

	// ACMCertificateARNRef references a CertificateValidation to retrieve
	// the ARN of its certificate once issued
	// +optional
	ACMCertificateARNRef *xpv1.Reference `json:"acmCertificateARNRef,omitempty"`

	// ACMCertificateARNSelector selects a reference to a
	// CertificateValidation to retrieve the ARN of its certificate once
	// issued
	// +optional
	ACMCertificateARNSelector *xpv1.Selector `json:"acmCertificateARNSelector,omitempty"`

	// CloudFrontDefaultCertificate serves content over the default
	// *.cloudfront.net certificate instead of a custom one.
	// +optional
	CloudFrontDefaultCertificate *bool `json:"cloudFrontDefaultCertificate,omitempty"`

	// SSLSupportMethod specifies how CloudFront serves HTTPS requests.
	// sni-only is the recommended method.
	// +kubebuilder:validation:Enum=sni-only;vip;static-ip
	// +optional
	SSLSupportMethod *string `json:"sslSupportMethod,omitempty"`

	// MinimumProtocolVersion is the minimum TLS version viewers may
	// negotiate.
	// +optional
	MinimumProtocolVersion *string `json:"minimumProtocolVersion,omitempty"`
}

// Restrictions holds the geographic restrictions of a distribution.
type Restrictions struct {
	GeoRestriction GeoRestriction `json:"geoRestriction"`
}

// GeoRestriction controls distribution of content by viewer country.
type GeoRestriction struct {
	// RestrictionType of the restriction. none disables geo restriction.
	// +kubebuilder:validation:Enum=blacklist;whitelist;none
	RestrictionType string `json:"restrictionType"`

	// Locations is the list of two-letter country codes the restriction
	// applies to.
	// +optional
	Locations []string `json:"locations,omitempty"`
}

// DistributionParameters define the desired state of an AWS CloudFront
// Distribution serving a single origin.
type DistributionParameters struct {
	// Region is the region you'd like your Distribution to be created in.
	// CloudFront is a global service; the region is used for signing API
	// requests.
	Region string `json:"region"`

	// Enabled accepts viewer requests when true. A distribution must be
	// disabled, and the disablement fully deployed, before it can be
	// deleted.
	Enabled *bool `json:"enabled"`

	// Comment about the distribution.
	// +optional
	Comment *string `json:"comment,omitempty"`

	// Aliases are the alternate domain names (CNAMEs) the distribution
	// answers for, e.g. the website root domain.
	// +optional
	Aliases []string `json:"aliases,omitempty"`

	// DefaultRootObject is the object served when a viewer requests the
	// root URL, e.g. index.html.
	// +optional
	DefaultRootObject *string `json:"defaultRootObject,omitempty"`

	// PriceClass selects the set of edge locations serving the
	// distribution.
	// +kubebuilder:validation:Enum=PriceClass_100;PriceClass_200;PriceClass_All
	// +optional
	PriceClass *string `json:"priceClass,omitempty"`

	// IsIPV6Enabled answers IPv6 DNS queries with the distribution's edge
	// addresses.
	// +optional
	IsIPV6Enabled *bool `json:"isIPV6Enabled,omitempty"`

	// Origin the distribution serves content from.
	Origin Origin `json:"origin"`

	// DefaultCacheBehavior applied to all requests.
	DefaultCacheBehavior DefaultCacheBehavior `json:"defaultCacheBehavior"`

	// ViewerCertificate presented to viewers over TLS.
	// +optional
	ViewerCertificate *ViewerCertificate `json:"viewerCertificate,omitempty"`

	// Restrictions on who can access the content.
	// +optional
	Restrictions *Restrictions `json:"restrictions,omitempty"`
}

// DistributionSpec defines the desired state of Distribution
type DistributionSpec struct {
	xpv1.ResourceSpec `json:",inline"`
	ForProvider       DistributionParameters `json:"forProvider"`
}

// DistributionExternalStatus keeps the state of the external resource
type DistributionExternalStatus struct {
	// ID of the distribution.
	ID string `json:"id,omitempty"`

	// ARN of the distribution.
	ARN string `json:"arn,omitempty"`

	// DomainName assigned by CloudFront, e.g. d111111abcdef8.cloudfront.net.
	DomainName string `json:"domainName,omitempty"`

	// HostedZoneID is the Route53 hosted zone alias records targeting the
	// distribution must use. It is the same for every distribution.
	HostedZoneID string `json:"hostedZoneId,omitempty"`

	// Status of the distribution. InProgress while a configuration change
	// propagates to the edge locations, Deployed once propagation has
	// finished.
	Status string `json:"status,omitempty"`

	// ETag of the current configuration, required for conditional updates
	// and deletes.
	ETag string `json:"etag,omitempty"`

	// LastModifiedTime of the distribution.
	LastModifiedTime *metav1.Time `json:"lastModifiedTime,omitempty"`
}

// DistributionStatus represents the observed state of a Distribution
type DistributionStatus struct {
	xpv1.ResourceStatus `json:",inline"`
	AtProvider          DistributionExternalStatus `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// Distribution is a managed resource that represents an AWS CloudFront
// Distribution.
// +kubebuilder:printcolumn:name="DOMAIN",type="string",JSONPath=".status.atProvider.domainName"
// +kubebuilder:printcolumn:name="STATUS",type="string",JSONPath=".status.atProvider.status"
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,categories={crossplane,managed,aws}
type Distribution struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DistributionSpec   `json:"spec"`
	Status DistributionStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DistributionList contains a list of Distribution
type DistributionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Distribution `json:"items"`
}
