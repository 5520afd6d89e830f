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
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
)

// BucketClient is the interface for Client for making S3 Bucket requests.
type BucketClient interface {
	HeadBucket(ctx context.Context, input *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, input *s3.CreateBucketInput, opts ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, input *s3.DeleteBucketInput, opts ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)

	GetBucketWebsite(ctx context.Context, input *s3.GetBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.GetBucketWebsiteOutput, error)
	PutBucketWebsite(ctx context.Context, input *s3.PutBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.PutBucketWebsiteOutput, error)
	DeleteBucketWebsite(ctx context.Context, input *s3.DeleteBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.DeleteBucketWebsiteOutput, error)

	GetPublicAccessBlock(ctx context.Context, input *s3.GetPublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.GetPublicAccessBlockOutput, error)
	PutPublicAccessBlock(ctx context.Context, input *s3.PutPublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error)
	DeletePublicAccessBlock(ctx context.Context, input *s3.DeletePublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.DeletePublicAccessBlockOutput, error)

	GetBucketTagging(ctx context.Context, input *s3.GetBucketTaggingInput, opts ...func(*s3.Options)) (*s3.GetBucketTaggingOutput, error)
	PutBucketTagging(ctx context.Context, input *s3.PutBucketTaggingInput, opts ...func(*s3.Options)) (*s3.PutBucketTaggingOutput, error)
	DeleteBucketTagging(ctx context.Context, input *s3.DeleteBucketTaggingInput, opts ...func(*s3.Options)) (*s3.DeleteBucketTaggingOutput, error)
}

const (
	// WebsiteNotFoundErrCode is the error code sent by AWS when the website
	// configuration does not exist
	WebsiteNotFoundErrCode = "NoSuchWebsiteConfiguration"
	// PublicAccessBlockNotFoundErrCode is the error code sent by AWS when the
	// public access block configuration does not exist
	PublicAccessBlockNotFoundErrCode = "NoSuchPublicAccessBlockConfiguration"
	// TaggingNotFoundErrCode is the error code sent by AWS when the tagging
	// set does not exist
	TaggingNotFoundErrCode = "NoSuchTagSet"
)

// NewClient creates new S3 Client with provided AWS Configuration/Credentials
func NewClient(cfg aws.Config) BucketClient {
	return s3.NewFromConfig(cfg)
}

// IsNotFound helper function to test for NotFound error
func IsNotFound(err error) bool {
	var notFoundError *s3types.NotFound
	return errors.As(err, &notFoundError)
}

// IsAlreadyExists helper function to test for BucketAlreadyOwnedByYou error
func IsAlreadyExists(err error) bool {
	var alreadyOwnedByYou *s3types.BucketAlreadyOwnedByYou
	return errors.As(err, &alreadyOwnedByYou)
}

// WebsiteConfigurationNotFound parses the aws Error and validates if the
// website configuration does not exist
func WebsiteConfigurationNotFound(err error) bool {
	var awsErr smithy.APIError
	return errors.As(err, &awsErr) && awsErr.ErrorCode() == WebsiteNotFoundErrCode
}

// PublicAccessBlockConfigurationNotFound parses the aws Error and validates if
// the public access block configuration does not exist
func PublicAccessBlockConfigurationNotFound(err error) bool {
	var awsErr smithy.APIError
	return errors.As(err, &awsErr) && awsErr.ErrorCode() == PublicAccessBlockNotFoundErrCode
}

// TaggingNotFound parses the aws Error and validates if the tagging
// configuration does not exist
func TaggingNotFound(err error) bool {
	var awsErr smithy.APIError
	return errors.As(err, &awsErr) && awsErr.ErrorCode() == TaggingNotFoundErrCode
}

// GenerateCreateBucketInput creates the input for CreateBucket S3 Client request
func GenerateCreateBucketInput(name string, s v1beta1.BucketParameters) *s3.CreateBucketInput {
	cbi := &s3.CreateBucketInput{
		ACL:             s3types.BucketCannedACL(pointer.StringValue(s.ACL)),
		Bucket:          aws.String(name),
		ObjectOwnership: s3types.ObjectOwnership(pointer.StringValue(s.ObjectOwnership)),
	}
	if s.LocationConstraint != "us-east-1" {
		cbi.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{LocationConstraint: s3types.BucketLocationConstraint(s.LocationConstraint)}
	}
	return cbi
}

// dashedWebsiteEndpointRegions are the regions whose website endpoints predate
// the dotted endpoint format and keep a dash between s3-website and the region.
var dashedWebsiteEndpointRegions = map[string]bool{
	"ap-northeast-1": true,
	"ap-southeast-1": true,
	"ap-southeast-2": true,
	"eu-west-1":      true,
	"sa-east-1":      true,
	"us-east-1":      true,
	"us-gov-west-1":  true,
	"us-west-1":      true,
	"us-west-2":      true,
}

// BucketARN returns the ARN of the bucket with the given name.
func BucketARN(name string) string {
	return fmt.Sprintf("arn:aws:s3:::%s", name)
}

// RegionalDomainName returns the region-qualified domain name of the bucket.
// CloudFront origins must use this form because the global bucket endpoint
// answers with temporary redirects until the bucket's DNS has propagated.
func RegionalDomainName(name, region string) string {
	return fmt.Sprintf("%s.s3.%s.amazonaws.com", name, region)
}

// WebsiteEndpoint returns the static website hosting endpoint of the bucket.
func WebsiteEndpoint(name, region string) string {
	if dashedWebsiteEndpointRegions[region] {
		return fmt.Sprintf("%s.s3-website-%s.amazonaws.com", name, region)
	}
	return fmt.Sprintf("%s.s3-website.%s.amazonaws.com", name, region)
}

// CopyTags converts the bucket spec tag set into the SDK tag shape.
func CopyTags(tags []v1beta1.Tag) []s3types.Tag {
	out := make([]s3types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, s3types.Tag{Key: t.Key, Value: t.Value})
	}
	return out
}

// CopyAWSTags converts the SDK tag set into the bucket spec tag shape.
func CopyAWSTags(tags []s3types.Tag) []v1beta1.Tag {
	out := make([]v1beta1.Tag, len(tags))
	for i, t := range tags {
		out[i] = v1beta1.Tag{Key: t.Key, Value: t.Value}
	}
	return out
}

// SortS3TagSet returns a copy of the tag set ordered by key.
func SortS3TagSet(tags []s3types.Tag) []s3types.Tag {
	out := make([]s3types.Tag, len(tags))
	copy(out, tags)
	sort.Slice(out, func(i, j int) bool {
		return pointer.StringValue(out[i].Key) < pointer.StringValue(out[j].Key)
	})
	return out
}

// GenerateBucketObservation derives the observed state of the bucket from its
// external name and its resolved parameters.
func GenerateBucketObservation(name string, s v1beta1.BucketParameters) v1beta1.BucketExternalStatus {
	o := v1beta1.BucketExternalStatus{
		ARN:                BucketARN(name),
		RegionalDomainName: RegionalDomainName(name, s.LocationConstraint),
	}
	if s.WebsiteConfiguration != nil {
		o.WebsiteEndpoint = WebsiteEndpoint(name, s.LocationConstraint)
	}
	return o
}
