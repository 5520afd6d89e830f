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

package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/document"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
)

const (
	bucketName = "example-com-site"
	region     = "eu-central-1"
)

func bucketParams(m ...func(*v1beta1.BucketParameters)) *v1beta1.BucketParameters {
	o := &v1beta1.BucketParameters{
		LocationConstraint: region,
	}

	for _, f := range m {
		f(o)
	}

	return o
}

func TestGenerateCreateBucketInput(t *testing.T) {
	cases := map[string]struct {
		in  v1beta1.BucketParameters
		out s3.CreateBucketInput
	}{
		"StandardRegion": {
			in: *bucketParams(),
			out: s3.CreateBucketInput{
				Bucket:                    aws.String(bucketName),
				CreateBucketConfiguration: &s3types.CreateBucketConfiguration{LocationConstraint: s3types.BucketLocationConstraint(region)},
			},
		},
		"UsEast1OmitsLocationConstraint": {
			in: *bucketParams(func(p *v1beta1.BucketParameters) {
				p.LocationConstraint = "us-east-1"
			}),
			out: s3.CreateBucketInput{
				Bucket: aws.String(bucketName),
			},
		},
		"ACLAndObjectOwnership": {
			in: *bucketParams(func(p *v1beta1.BucketParameters) {
				p.ACL = aws.String("private")
				p.ObjectOwnership = aws.String("BucketOwnerEnforced")
			}),
			out: s3.CreateBucketInput{
				ACL:                       s3types.BucketCannedACLPrivate,
				Bucket:                    aws.String(bucketName),
				CreateBucketConfiguration: &s3types.CreateBucketConfiguration{LocationConstraint: s3types.BucketLocationConstraint(region)},
				ObjectOwnership:           s3types.ObjectOwnershipBucketOwnerEnforced,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := GenerateCreateBucketInput(bucketName, tc.in)
			if diff := cmp.Diff(r, &tc.out, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateCreateBucketInput(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestWebsiteEndpoint(t *testing.T) {
	cases := map[string]struct {
		region string
		want   string
	}{
		"UsEast1KeepsDashFormat": {
			region: "us-east-1",
			want:   "example-com-site.s3-website-us-east-1.amazonaws.com",
		},
		"EuWest1KeepsDashFormat": {
			region: "eu-west-1",
			want:   "example-com-site.s3-website-eu-west-1.amazonaws.com",
		},
		"EuCentral1UsesDotFormat": {
			region: "eu-central-1",
			want:   "example-com-site.s3-website.eu-central-1.amazonaws.com",
		},
		"ApSouth1UsesDotFormat": {
			region: "ap-south-1",
			want:   "example-com-site.s3-website.ap-south-1.amazonaws.com",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := WebsiteEndpoint(bucketName, tc.region)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("WebsiteEndpoint(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestGenerateBucketObservation(t *testing.T) {
	cases := map[string]struct {
		in   v1beta1.BucketParameters
		want v1beta1.BucketExternalStatus
	}{
		"WebsiteConfigured": {
			in: *bucketParams(func(p *v1beta1.BucketParameters) {
				p.WebsiteConfiguration = &v1beta1.WebsiteConfiguration{
					IndexDocument: &v1beta1.IndexDocument{Suffix: "index.html"},
				}
			}),
			want: v1beta1.BucketExternalStatus{
				ARN:                "arn:aws:s3:::example-com-site",
				RegionalDomainName: "example-com-site.s3.eu-central-1.amazonaws.com",
				WebsiteEndpoint:    "example-com-site.s3-website.eu-central-1.amazonaws.com",
			},
		},
		"NoWebsite": {
			in: *bucketParams(),
			want: v1beta1.BucketExternalStatus{
				ARN:                "arn:aws:s3:::example-com-site",
				RegionalDomainName: "example-com-site.s3.eu-central-1.amazonaws.com",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := GenerateBucketObservation(bucketName, tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("GenerateBucketObservation(...): -want, +got:\n%s", diff)
			}
		})
	}
}
