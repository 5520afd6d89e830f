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
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3/fake"
)

// Client creates a MockBucketClient where the bucket exists and none of the
// sub-resource configurations are set, with an optional list of ClientModifiers
func Client(m ...ClientModifier) *fake.MockBucketClient {
	client := &fake.MockBucketClient{
		MockHeadBucket: func(ctx context.Context, input *awss3.HeadBucketInput, opts []func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
			return &awss3.HeadBucketOutput{}, nil
		},
		MockCreateBucket: func(ctx context.Context, input *awss3.CreateBucketInput, opts []func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
			return &awss3.CreateBucketOutput{}, nil
		},
		MockDeleteBucket: func(ctx context.Context, input *awss3.DeleteBucketInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketOutput, error) {
			return &awss3.DeleteBucketOutput{}, nil
		},
		MockGetBucketWebsite: func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
			return nil, &smithy.GenericAPIError{Code: s3.WebsiteNotFoundErrCode}
		},
		MockPutBucketWebsite: func(ctx context.Context, input *awss3.PutBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.PutBucketWebsiteOutput, error) {
			return &awss3.PutBucketWebsiteOutput{}, nil
		},
		MockDeleteBucketWebsite: func(ctx context.Context, input *awss3.DeleteBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketWebsiteOutput, error) {
			return &awss3.DeleteBucketWebsiteOutput{}, nil
		},
		MockGetPublicAccessBlock: func(ctx context.Context, input *awss3.GetPublicAccessBlockInput, opts []func(*awss3.Options)) (*awss3.GetPublicAccessBlockOutput, error) {
			return nil, &smithy.GenericAPIError{Code: s3.PublicAccessBlockNotFoundErrCode}
		},
		MockPutPublicAccessBlock: func(ctx context.Context, input *awss3.PutPublicAccessBlockInput, opts []func(*awss3.Options)) (*awss3.PutPublicAccessBlockOutput, error) {
			return &awss3.PutPublicAccessBlockOutput{}, nil
		},
		MockDeletePublicAccessBlock: func(ctx context.Context, input *awss3.DeletePublicAccessBlockInput, opts []func(*awss3.Options)) (*awss3.DeletePublicAccessBlockOutput, error) {
			return &awss3.DeletePublicAccessBlockOutput{}, nil
		},
		MockGetBucketTagging: func(ctx context.Context, input *awss3.GetBucketTaggingInput, opts []func(*awss3.Options)) (*awss3.GetBucketTaggingOutput, error) {
			return nil, &smithy.GenericAPIError{Code: s3.TaggingNotFoundErrCode}
		},
		MockPutBucketTagging: func(ctx context.Context, input *awss3.PutBucketTaggingInput, opts []func(*awss3.Options)) (*awss3.PutBucketTaggingOutput, error) {
			return &awss3.PutBucketTaggingOutput{}, nil
		},
		MockDeleteBucketTagging: func(ctx context.Context, input *awss3.DeleteBucketTaggingInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketTaggingOutput, error) {
			return &awss3.DeleteBucketTaggingOutput{}, nil
		},
	}
	for _, v := range m {
		v(client)
	}
	return client
}

// ClientModifier is a function which modifies the S3 Client for testing
type ClientModifier func(client *fake.MockBucketClient)

// WithHeadBucket sets the MockHeadBucket of the mock S3 Client
func WithHeadBucket(input func(ctx context.Context, input *awss3.HeadBucketInput, opts []func(*awss3.Options)) (*awss3.HeadBucketOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockHeadBucket = input
	}
}

// WithCreateBucket sets the MockCreateBucket of the mock S3 Client
func WithCreateBucket(input func(ctx context.Context, input *awss3.CreateBucketInput, opts []func(*awss3.Options)) (*awss3.CreateBucketOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockCreateBucket = input
	}
}

// WithDeleteBucket sets the MockDeleteBucket of the mock S3 Client
func WithDeleteBucket(input func(ctx context.Context, input *awss3.DeleteBucketInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockDeleteBucket = input
	}
}

// WithGetBucketWebsite sets the MockGetBucketWebsite of the mock S3 Client
func WithGetBucketWebsite(input func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockGetBucketWebsite = input
	}
}

// WithGetPublicAccessBlock sets the MockGetPublicAccessBlock of the mock S3 Client
func WithGetPublicAccessBlock(input func(ctx context.Context, input *awss3.GetPublicAccessBlockInput, opts []func(*awss3.Options)) (*awss3.GetPublicAccessBlockOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockGetPublicAccessBlock = input
	}
}

// WithGetBucketTagging sets the MockGetBucketTagging of the mock S3 Client
func WithGetBucketTagging(input func(ctx context.Context, input *awss3.GetBucketTaggingInput, opts []func(*awss3.Options)) (*awss3.GetBucketTaggingOutput, error)) ClientModifier {
	return func(client *fake.MockBucketClient) {
		client.MockGetBucketTagging = input
	}
}
