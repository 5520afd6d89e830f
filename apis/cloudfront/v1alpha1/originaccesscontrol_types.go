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

// OriginAccessControlParameters define the desired state of an AWS
// CloudFront Origin Access Control, the signed identity a distribution
// uses to fetch content from a restricted origin.
type OriginAccessControlParameters struct {
	// Region is the region you'd like your OriginAccessControl to be
	// created in. CloudFront is a global service; the region is used for
	// signing API requests.
	Region string `json:"region"`

	// Name to identify the origin access control. Must be unique within
	// the account and at most 64 characters long.
	Name string `json:"name"`

	// Description of the origin access control.
	// +optional
	Description *string `json:"description,omitempty"`

	// OriginAccessControlOriginType is the type of origin the control is
	// for.
	// +kubebuilder:validation:Enum=s3;mediastore
	OriginAccessControlOriginType string `json:"originAccessControlOriginType"`

	// SigningBehavior specifies which requests CloudFront signs. always is
	// the recommended setting.
	// +kubebuilder:validation:Enum=always;never;no-override
	SigningBehavior string `json:"signingBehavior"`

	// SigningProtocol is the signing protocol of the origin access
	// control. sigv4 is the only valid value.
	// +kubebuilder:validation:Enum=sigv4
	SigningProtocol string `json:"signingProtocol"`
}

// OriginAccessControlSpec defines the desired state of OriginAccessControl
type OriginAccessControlSpec struct {
	xpv1.ResourceSpec `json:",inline"`
	ForProvider       OriginAccessControlParameters `json:"forProvider"`
}

// OriginAccessControlExternalStatus keeps the state of the external resource
type OriginAccessControlExternalStatus struct {
	// ID of the origin access control. Origins of a distribution refer to
	// it by this ID.
	ID string `json:"id,omitempty"`

	// ETag of the current configuration, required for conditional updates
	// and deletes.
	ETag string `json:"etag,omitempty"`
}

// OriginAccessControlStatus represents the observed state of an
// OriginAccessControl
type OriginAccessControlStatus struct {
	xpv1.ResourceStatus `json:",inline"`
	AtProvider          OriginAccessControlExternalStatus `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// OriginAccessControl is a managed resource that represents an AWS
// CloudFront Origin Access Control.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,categories={crossplane,managed,aws}
type OriginAccessControl struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   OriginAccessControlSpec   `json:"spec"`
	Status OriginAccessControlStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// OriginAccessControlList contains a list of OriginAccessControl
type OriginAccessControlList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []OriginAccessControl `json:"items"`
}
