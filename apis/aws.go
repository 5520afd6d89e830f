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

// Package apis contains Kubernetes API groups for the AWS website provider.
package apis

import (
	"k8s.io/apimachinery/pkg/runtime"

	acmv1beta1 "github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
	cloudfrontv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
	route53v1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/route53/v1alpha1"
	s3v1alpha3 "github.com/crossplane-contrib/provider-aws-website/apis/s3/v1alpha3"
	s3v1beta1 "github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
	awsv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	awsv1beta1 "github.com/crossplane-contrib/provider-aws-website/apis/v1beta1"
)

func init() {
	// Register the types with the Scheme so the components can map objects to GroupVersionKinds and back
	AddToSchemes = append(AddToSchemes,
		awsv1alpha1.SchemeBuilder.AddToScheme,
		awsv1beta1.SchemeBuilder.AddToScheme,
		acmv1beta1.SchemeBuilder.AddToScheme,
		cloudfrontv1alpha1.SchemeBuilder.AddToScheme,
		route53v1alpha1.SchemeBuilder.AddToScheme,
		s3v1beta1.SchemeBuilder.AddToScheme,
		s3v1alpha3.SchemeBuilder.AddToScheme,
	)
}

// AddToSchemes may be used to add all resources defined in the project to a Scheme
var AddToSchemes runtime.SchemeBuilder

// AddToScheme adds all Resources to the Scheme
func AddToScheme(s *runtime.Scheme) error {
	return AddToSchemes.AddToScheme(s)
}
