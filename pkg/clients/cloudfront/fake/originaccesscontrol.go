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

package fake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudfront"

	clientset "github.com/crossplane-contrib/provider-aws-website/pkg/clients/cloudfront"
)

// this ensures that the mock implements the client interface
var _ clientset.OriginAccessControlClient = (*MockOriginAccessControlClient)(nil)

// MockOriginAccessControlClient is a type that implements all the methods for OriginAccessControlClient interface
type MockOriginAccessControlClient struct {
	MockCreateOriginAccessControl func(ctx context.Context, input *cloudfront.CreateOriginAccessControlInput, opts []func(*cloudfront.Options)) (*cloudfront.CreateOriginAccessControlOutput, error)
	MockGetOriginAccessControl    func(ctx context.Context, input *cloudfront.GetOriginAccessControlInput, opts []func(*cloudfront.Options)) (*cloudfront.GetOriginAccessControlOutput, error)
	MockUpdateOriginAccessControl func(ctx context.Context, input *cloudfront.UpdateOriginAccessControlInput, opts []func(*cloudfront.Options)) (*cloudfront.UpdateOriginAccessControlOutput, error)
	MockDeleteOriginAccessControl func(ctx context.Context, input *cloudfront.DeleteOriginAccessControlInput, opts []func(*cloudfront.Options)) (*cloudfront.DeleteOriginAccessControlOutput, error)
}

// CreateOriginAccessControl mocks CreateOriginAccessControl method
func (m *MockOriginAccessControlClient) CreateOriginAccessControl(ctx context.Context, input *cloudfront.CreateOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.CreateOriginAccessControlOutput, error) {
	return m.MockCreateOriginAccessControl(ctx, input, opts)
}

// GetOriginAccessControl mocks GetOriginAccessControl method
func (m *MockOriginAccessControlClient) GetOriginAccessControl(ctx context.Context, input *cloudfront.GetOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetOriginAccessControlOutput, error) {
	return m.MockGetOriginAccessControl(ctx, input, opts)
}

// UpdateOriginAccessControl mocks UpdateOriginAccessControl method
func (m *MockOriginAccessControlClient) UpdateOriginAccessControl(ctx context.Context, input *cloudfront.UpdateOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.UpdateOriginAccessControlOutput, error) {
	return m.MockUpdateOriginAccessControl(ctx, input, opts)
}

// DeleteOriginAccessControl mocks DeleteOriginAccessControl method
func (m *MockOriginAccessControlClient) DeleteOriginAccessControl(ctx context.Context, input *cloudfront.DeleteOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.DeleteOriginAccessControlOutput, error) {
	return m.MockDeleteOriginAccessControl(ctx, input, opts)
}
