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

package testing

import (
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/meta"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
)

var (
	acl = "private"
	// Region is the test region of the bucket
	Region = "us-east-1"
	// BucketName is the name of the s3 bucket in testing
	BucketName = "test.bucket.name"
)

// BucketModifier is a function which modifies the Bucket for testing
type BucketModifier func(bucket *v1beta1.Bucket)

// WithArn sets the ARN for an S3 Bucket
func WithArn(arn string) BucketModifier {
	return func(bucket *v1beta1.Bucket) {
		bucket.Status.AtProvider.ARN = arn
	}
}

// WithConditions sets the Conditions for an S3 Bucket
func WithConditions(c ...xpv1.Condition) BucketModifier {
	return func(r *v1beta1.Bucket) { r.Status.ConditionedStatus.Conditions = c }
}

// WithWebConfig sets the WebsiteConfiguration for an S3 Bucket
func WithWebConfig(s *v1beta1.WebsiteConfiguration) BucketModifier {
	return func(r *v1beta1.Bucket) { r.Spec.ForProvider.WebsiteConfiguration = s }
}

// WithPublicAccessBlockConfig sets the PublicAccessBlockConfiguration for an S3 Bucket
func WithPublicAccessBlockConfig(s *v1beta1.PublicAccessBlockConfiguration) BucketModifier {
	return func(r *v1beta1.Bucket) { r.Spec.ForProvider.PublicAccessBlockConfiguration = s }
}

// WithTaggingConfig sets the Tagging for an S3 Bucket
func WithTaggingConfig(s *v1beta1.Tagging) BucketModifier {
	return func(r *v1beta1.Bucket) { r.Spec.ForProvider.BucketTagging = s }
}

// WithObjectOwnership sets the ObjectOwnership for an S3 Bucket
func WithObjectOwnership(s *string) BucketModifier {
	return func(r *v1beta1.Bucket) { r.Spec.ForProvider.ObjectOwnership = s }
}

// Bucket creates a v1beta1 Bucket for use in testing
func Bucket(m ...BucketModifier) *v1beta1.Bucket {
	cr := &v1beta1.Bucket{
		Spec: v1beta1.BucketSpec{
			ForProvider: v1beta1.BucketParameters{
				ACL:                &acl,
				LocationConstraint: Region,
			},
		},
	}
	for _, f := range m {
		f(cr)
	}
	meta.SetExternalName(cr, BucketName)
	return cr
}
