/*
Copyright 2019 The Crossplane Authors.

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

package v1beta1

import (
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CertificateValidationParameters defines the desired state of a
// CertificateValidation. It publishes the DNS challenge of an ACM
// certificate into a Route53 hosted zone and tracks the certificate
// until it is issued.
type CertificateValidationParameters struct {

	// Region is the region of the certificate to validate.
	Region string `json:"region"`

	// CertificateARN is the ARN of the certificate whose DNS validation
	// record should be published.
	// +optional
	// +immutable
	CertificateARN *string `json:"certificateARN,omitempty"`

	// CertificateARNRef references a Certificate to retrieve its ARN
	// +optional
	CertificateARNRef *xpv1.Reference `json:"certificateARNRef,omitempty"`

	// CertificateARNSelector selects a reference to a Certificate to
	// retrieve its ARN
	// +optional
	CertificateARNSelector *xpv1.Selector `json:"certificateARNSelector,omitempty"`

	// ZoneID of the hosted zone into which the validation record is
	// published.
	// +optional
	ZoneID *string `json:"zoneId,omitempty"`

	// ZoneName selects the hosted zone by domain name when no zone ID is
	// given. The name must match exactly one hosted zone; zero or multiple
	// matches abort reconciliation before any record is written.
	// +optional
	ZoneName *string `json:"zoneName,omitempty"`
}

// CertificateValidationSpec defines the desired state of CertificateValidation
type CertificateValidationSpec struct {
	xpv1.ResourceSpec `json:",inline"`
	ForProvider       CertificateValidationParameters `json:"forProvider"`
}

// CertificateValidationExternalStatus keeps the state of external resource
type CertificateValidationExternalStatus struct {
	// IssuedCertificateARN is the ARN of the certificate, set only once the
	// certificate has reached the ISSUED state. Resources that must wait
	// for issuance reference this field.
	IssuedCertificateARN string `json:"issuedCertificateARN,omitempty"`

	// Status of the certificate being validated
	Status string `json:"status,omitempty"`

	// ZoneID of the hosted zone the validation record was published to.
	ZoneID string `json:"zoneId,omitempty"`

	// ResourceRecord is the validation CNAME published into the zone.
	ResourceRecord *ResourceRecord `json:"resourceRecord,omitempty"`
}

// CertificateValidationStatus represents the observed state of a CertificateValidation
type CertificateValidationStatus struct {
	xpv1.ResourceStatus `json:",inline"`
	AtProvider          CertificateValidationExternalStatus `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:storageversion

// CertificateValidation validates an AWS Certificate by publishing its DNS
// challenge and becomes Available once the certificate is issued.
// +kubebuilder:printcolumn:name="STATUS",type="string",JSONPath=".status.atProvider.status"
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,categories={crossplane,managed,aws}
type CertificateValidation struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CertificateValidationSpec   `json:"spec"`
	Status CertificateValidationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// CertificateValidationList contains a list of CertificateValidation
type CertificateValidationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CertificateValidation `json:"items"`
}
