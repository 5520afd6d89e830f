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
var _ clientset.DistributionClient = (*MockDistributionClient)(nil)

// MockDistributionClient is a type that implements all the methods for DistributionClient interface
type MockDistributionClient struct {
	MockCreateDistribution    func(ctx context.Context, input *cloudfront.CreateDistributionInput, opts []func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error)
	MockGetDistribution       func(ctx context.Context, input *cloudfront.GetDistributionInput, opts []func(*cloudfront.Options)) (*cloudfront.GetDistributionOutput, error)
	MockGetDistributionConfig func(ctx context.Context, input *cloudfront.GetDistributionConfigInput, opts []func(*cloudfront.Options)) (*cloudfront.GetDistributionConfigOutput, error)
	MockUpdateDistribution    func(ctx context.Context, input *cloudfront.UpdateDistributionInput, opts []func(*cloudfront.Options)) (*cloudfront.UpdateDistributionOutput, error)
	MockDeleteDistribution    func(ctx context.Context, input *cloudfront.DeleteDistributionInput, opts []func(*cloudfront.Options)) (*cloudfront.DeleteDistributionOutput, error)
}

// CreateDistribution mocks CreateDistribution method
func (m *MockDistributionClient) CreateDistribution(ctx context.Context, input *cloudfront.CreateDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error) {
	return m.MockCreateDistribution(ctx, input, opts)
}

// GetDistribution mocks GetDistribution method
func (m *MockDistributionClient) GetDistribution(ctx context.Context, input *cloudfront.GetDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetDistributionOutput, error) {
	return m.MockGetDistribution(ctx, input, opts)
}

// GetDistributionConfig mocks GetDistributionConfig method
func (m *MockDistributionClient) GetDistributionConfig(ctx context.Context, input *cloudfront.GetDistributionConfigInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetDistributionConfigOutput, error) {
	return m.MockGetDistributionConfig(ctx, input, opts)
}

// UpdateDistribution mocks UpdateDistribution method
func (m *MockDistributionClient) UpdateDistribution(ctx context.Context, input *cloudfront.UpdateDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.UpdateDistributionOutput, error) {
	return m.MockUpdateDistribution(ctx, input, opts)
}

// DeleteDistribution mocks DeleteDistribution method
func (m *MockDistributionClient) DeleteDistribution(ctx context.Context, input *cloudfront.DeleteDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.DeleteDistributionOutput, error) {
	return m.MockDeleteDistribution(ctx, input, opts)
}
