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
	"reflect"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// Package type metadata.
const (
	Group   = "acm.website.aws.crossplane.io"
	Version = "v1beta1"
)

var (
	// SchemeGroupVersion is group version used to register these objects
	SchemeGroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: SchemeGroupVersion}
)

// Certificate type metadata.
var (
	CertificateKind             = reflect.TypeOf(Certificate{}).Name()
	CertificateGroupKind        = schema.GroupKind{Group: Group, Kind: CertificateKind}.String()
	CertificateKindAPIVersion   = CertificateKind + "." + SchemeGroupVersion.String()
	CertificateGroupVersionKind = SchemeGroupVersion.WithKind(CertificateKind)
)

// CertificateValidation type metadata.
var (
	CertificateValidationKind             = reflect.TypeOf(CertificateValidation{}).Name()
	CertificateValidationGroupKind        = schema.GroupKind{Group: Group, Kind: CertificateValidationKind}.String()
	CertificateValidationKindAPIVersion   = CertificateValidationKind + "." + SchemeGroupVersion.String()
	CertificateValidationGroupVersionKind = SchemeGroupVersion.WithKind(CertificateValidationKind)
)

func init() {
	SchemeBuilder.Register(&Certificate{}, &CertificateList{})
	SchemeBuilder.Register(&CertificateValidation{}, &CertificateValidationList{})
}
