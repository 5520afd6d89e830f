/*
Copyright 2020 The Crossplane Authors.

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

// DNSRecordType defines the valid DNS Record Types that can be used.
type DNSRecordType string

const (
	// DNSRecordTypeSOA represents DNS SOA record type.
	DNSRecordTypeSOA DNSRecordType = "SOA"

	// DNSRecordTypeA represents DNS A record type.
	DNSRecordTypeA DNSRecordType = "A"

	// DNSRecordTypeTXT represents DNS TXT record type.
	DNSRecordTypeTXT DNSRecordType = "TXT"

	// DNSRecordTypeNS represents DNS NS record type.
	DNSRecordTypeNS DNSRecordType = "NS"

	// DNSRecordTypeCNAME represents DNS CNAME record type.
	DNSRecordTypeCNAME DNSRecordType = "CNAME"

	// DNSRecordTypeMX represents DNS MX record type.
	DNSRecordTypeMX DNSRecordType = "MX"

	// DNSRecordTypeAAAA represents DNS AAAA record type.
	DNSRecordTypeAAAA DNSRecordType = "AAAA"

	// DNSRecordTypeCAA represents DNS CAA record type.
	DNSRecordTypeCAA DNSRecordType = "CAA"
)

// +kubebuilder:object:root=true

// ResourceRecordSet is a managed resource that represents an AWS Route53 Resource Record.
// +kubebuilder:printcolumn:name="TYPE",type="string",JSONPath=".spec.forProvider.type"
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,categories={crossplane,managed,aws}
type ResourceRecordSet struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ResourceRecordSetSpec `json:"spec"`
	// +optional
	Status ResourceRecordSetStatus `json:"status,omitempty"`
}

// ResourceRecordSetSpec defines the desired state of an AWS Route53 Resource Record.
type ResourceRecordSetSpec struct {
	xpv1.ResourceSpec `json:",inline"`
	ForProvider       ResourceRecordSetParameters `json:"forProvider"`
}

// ResourceRecordSetStatus represents the observed state of a ResourceRecordSet.
type ResourceRecordSetStatus struct {
	xpv1.ResourceStatus `json:",inline"`
}

// ResourceRecordSetParameters define the desired state of an AWS Route53
// Resource Record. The record name is the external name of the resource,
// defaulting to the object name.
type ResourceRecordSetParameters struct {
	// ZoneID of the hosted zone in which you want to create, change, or
	// delete the resource record.
	// +optional
	ZoneID *string `json:"zoneId,omitempty"`

	// ZoneIDRef references a HostedZone to retrieve its zone ID
	// +optional
	ZoneIDRef *xpv1.Reference `json:"zoneIdRef,omitempty"`

	// ZoneIDSelector selects a reference to a HostedZone to retrieve its
	// zone ID
	// +optional
	ZoneIDSelector *xpv1.Selector `json:"zoneIdSelector,omitempty"`

	// ZoneName is the name of the hosted zone to publish the record in,
	// looked up at reconcile time. Exactly one zone must match the name
	// after trailing dot normalization. Only one of ZoneID and ZoneName may
	// be given.
	// +optional
	ZoneName *string `json:"zoneName,omitempty"`

	// Type represents the DNS record type.
	Type string `json:"type"`

	// The resource record cache time to live (TTL), in seconds. Alias
	// records must omit it, the TTL of the alias target applies.
	// +optional
	TTL *int64 `json:"ttl,omitempty"`

	// ResourceRecords holds the values of the record. Required unless the
	// record is an alias.
	// +optional
	ResourceRecords []ResourceRecord `json:"resourceRecords,omitempty"`

	// AliasTarget holds information about the AWS resource, such as a
	// CloudFront distribution or an Amazon S3 bucket, that you want to
	// route traffic to.
	// +optional
	AliasTarget *AliasTarget `json:"aliasTarget,omitempty"`
}

// AliasTarget holds information about the AWS resource, such as a CloudFront
// distribution or an Amazon S3 bucket, that you want to route traffic to.
type AliasTarget struct {
	// DNSName is the domain name the alias resolves to, for a CloudFront
	// alias the domain name of the distribution.
	// +optional
	DNSName string `json:"dnsName,omitempty"`

	// DNSNameRef references a Distribution to retrieve its domain name
	// +optional
	DNSNameRef *xpv1.Reference `json:"dnsNameRef,omitempty"`

	// DNSNameSelector selects a reference to a Distribution to retrieve
	// its domain name
	// +optional
	DNSNameSelector *xpv1.Selector `json:"dnsNameSelector,omitempty"`

	// EvaluateTargetHealth let you inherit the health of the referenced AWS
	// resource, such as a load balancer or another resource record set in
	// the hosted zone.
	// +optional
	EvaluateTargetHealth bool `json:"evaluateTargetHealth,omitempty"`

	// HostedZoneID of the AWS service where you want to route your traffic.
	// These are predetermined hosted zone IDs provided by AWS, one per
	// service and region, except for CloudFront which uses a single fixed
	// zone for every distribution.
	// +optional
	HostedZoneID string `json:"hostedZoneId,omitempty"`

	// HostedZoneIDRef references a Distribution to retrieve the fixed
	// CloudFront alias hosted zone ID
	// +optional
	HostedZoneIDRef *xpv1.Reference `json:"hostedZoneIdRef,omitempty"`

	// HostedZoneIDSelector selects a reference to a Distribution to
	// retrieve the fixed CloudFront alias hosted zone ID
	// +optional
	HostedZoneIDSelector *xpv1.Selector `json:"hostedZoneIdSelector,omitempty"`
}

// ResourceRecord holds the DNS value to be used for the record.
type ResourceRecord struct {
	// Value represents the current or new DNS record value(max 4,000 characters).
	// In the case of a DELETE action, if the current value does not match the actual value,
	// an error is returned.
	Value string `json:"value"`
}

// +kubebuilder:object:root=true

// ResourceRecordSetList contains a list of ResourceRecordSet.
type ResourceRecordSetList struct {
	metav1.TypeMeta `json:",inline"`
	// +optional
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []ResourceRecordSet `json:"items"`
}
