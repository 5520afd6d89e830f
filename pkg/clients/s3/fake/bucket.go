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

package fake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	clientset "github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3"
)

// this ensures that the mock implements the client interface
var _ clientset.BucketClient = (*MockBucketClient)(nil)

// MockBucketClient is a type that implements all the methods for BucketClient interface
type MockBucketClient struct {
	MockHeadBucket   func(ctx context.Context, input *s3.HeadBucketInput, opts []func(*s3.Options)) (*s3.HeadBucketOutput, error)
	MockCreateBucket func(ctx context.Context, input *s3.CreateBucketInput, opts []func(*s3.Options)) (*s3.CreateBucketOutput, error)
	MockDeleteBucket func(ctx context.Context, input *s3.DeleteBucketInput, opts []func(*s3.Options)) (*s3.DeleteBucketOutput, error)

	MockGetBucketWebsite    func(ctx context.Context, input *s3.GetBucketWebsiteInput, opts []func(*s3.Options)) (*s3.GetBucketWebsiteOutput, error)
	MockPutBucketWebsite    func(ctx context.Context, input *s3.PutBucketWebsiteInput, opts []func(*s3.Options)) (*s3.PutBucketWebsiteOutput, error)
	MockDeleteBucketWebsite func(ctx context.Context, input *s3.DeleteBucketWebsiteInput, opts []func(*s3.Options)) (*s3.DeleteBucketWebsiteOutput, error)

	MockGetPublicAccessBlock    func(ctx context.Context, input *s3.GetPublicAccessBlockInput, opts []func(*s3.Options)) (*s3.GetPublicAccessBlockOutput, error)
	MockPutPublicAccessBlock    func(ctx context.Context, input *s3.PutPublicAccessBlockInput, opts []func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error)
	MockDeletePublicAccessBlock func(ctx context.Context, input *s3.DeletePublicAccessBlockInput, opts []func(*s3.Options)) (*s3.DeletePublicAccessBlockOutput, error)

	MockGetBucketTagging    func(ctx context.Context, input *s3.GetBucketTaggingInput, opts []func(*s3.Options)) (*s3.GetBucketTaggingOutput, error)
	MockPutBucketTagging    func(ctx context.Context, input *s3.PutBucketTaggingInput, opts []func(*s3.Options)) (*s3.PutBucketTaggingOutput, error)
	MockDeleteBucketTagging func(ctx context.Context, input *s3.DeleteBucketTaggingInput, opts []func(*s3.Options)) (*s3.DeleteBucketTaggingOutput, error)
}

// HeadBucket mocks HeadBucket method
func (m MockBucketClient) HeadBucket(ctx context.Context, input *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return m.MockHeadBucket(ctx, input, opts)
}

// CreateBucket mocks CreateBucket method
func (m MockBucketClient) CreateBucket(ctx context.Context, input *s3.CreateBucketInput, opts ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	return m.MockCreateBucket(ctx, input, opts)
}

// DeleteBucket mocks DeleteBucket method
func (m MockBucketClient) DeleteBucket(ctx context.Context, input *s3.DeleteBucketInput, opts ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	return m.MockDeleteBucket(ctx, input, opts)
}

// GetBucketWebsite mocks GetBucketWebsite method
func (m MockBucketClient) GetBucketWebsite(ctx context.Context, input *s3.GetBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.GetBucketWebsiteOutput, error) {
	return m.MockGetBucketWebsite(ctx, input, opts)
}

// PutBucketWebsite mocks PutBucketWebsite method
func (m MockBucketClient) PutBucketWebsite(ctx context.Context, input *s3.PutBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.PutBucketWebsiteOutput, error) {
	return m.MockPutBucketWebsite(ctx, input, opts)
}

// DeleteBucketWebsite mocks DeleteBucketWebsite method
func (m MockBucketClient) DeleteBucketWebsite(ctx context.Context, input *s3.DeleteBucketWebsiteInput, opts ...func(*s3.Options)) (*s3.DeleteBucketWebsiteOutput, error) {
	return m.MockDeleteBucketWebsite(ctx, input, opts)
}

// GetPublicAccessBlock mocks GetPublicAccessBlock method
func (m MockBucketClient) GetPublicAccessBlock(ctx context.Context, input *s3.GetPublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.GetPublicAccessBlockOutput, error) {
	return m.MockGetPublicAccessBlock(ctx, input, opts)
}

// PutPublicAccessBlock mocks PutPublicAccessBlock method
func (m MockBucketClient) PutPublicAccessBlock(ctx context.Context, input *s3.PutPublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error) {
	return m.MockPutPublicAccessBlock(ctx, input, opts)
}

// DeletePublicAccessBlock mocks DeletePublicAccessBlock method
func (m MockBucketClient) DeletePublicAccessBlock(ctx context.Context, input *s3.DeletePublicAccessBlockInput, opts ...func(*s3.Options)) (*s3.DeletePublicAccessBlockOutput, error) {
	return m.MockDeletePublicAccessBlock(ctx, input, opts)
}

// GetBucketTagging mocks GetBucketTagging method
func (m MockBucketClient) GetBucketTagging(ctx context.Context, input *s3.GetBucketTaggingInput, opts ...func(*s3.Options)) (*s3.GetBucketTaggingOutput, error) {
	return m.MockGetBucketTagging(ctx, input, opts)
}

// PutBucketTagging mocks PutBucketTagging method
func (m MockBucketClient) PutBucketTagging(ctx context.Context, input *s3.PutBucketTaggingInput, opts ...func(*s3.Options)) (*s3.PutBucketTaggingOutput, error) {
	return m.MockPutBucketTagging(ctx, input, opts)
}

// DeleteBucketTagging mocks DeleteBucketTagging method
func (m MockBucketClient) DeleteBucketTagging(ctx context.Context, input *s3.DeleteBucketTaggingInput, opts ...func(*s3.Options)) (*s3.DeleteBucketTaggingOutput, error) {
	return m.MockDeleteBucketTagging(ctx, input, opts)
}
