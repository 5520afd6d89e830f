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

package bucket

import (
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/document"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
)

const (
	websiteGetFailed    = "cannot get Bucket website configuration"
	websitePutFailed    = "cannot put Bucket website configuration"
	websiteDeleteFailed = "cannot delete Bucket website configuration"
)

// WebsiteConfigurationClient is the client for API methods and reconciling the WebsiteConfiguration
type WebsiteConfigurationClient struct {
	client s3.BucketClient
}

// NewWebsiteConfigurationClient creates the client for Website Configuration
func NewWebsiteConfigurationClient(client s3.BucketClient) *WebsiteConfigurationClient {
	return &WebsiteConfigurationClient{client: client}
}

// Observe checks if the resource exists and if it matches the local configuration
func (in *WebsiteConfigurationClient) Observe(ctx context.Context, bucket *v1beta1.Bucket) (ResourceStatus, error) {
	external, err := in.client.GetBucketWebsite(ctx, &awss3.GetBucketWebsiteInput{Bucket: pointer.ToOrNilIfZeroValue(meta.GetExternalName(bucket))})
	config := bucket.Spec.ForProvider.WebsiteConfiguration
	if err != nil {
		if s3.WebsiteConfigurationNotFound(err) && config == nil {
			return Updated, nil
		}
		return NeedsUpdate, errorutils.Wrap(resource.Ignore(s3.WebsiteConfigurationNotFound, err), websiteGetFailed)
	}

	switch {
	case external.RoutingRules == nil && external.RedirectAllRequestsTo == nil && external.IndexDocument == nil && external.ErrorDocument == nil && config == nil:
		return Updated, nil
	case config == nil:
		return NeedsDeletion, nil
	}

	source := GenerateWebsiteConfiguration(config)
	confBody := &types.WebsiteConfiguration{
		ErrorDocument:         external.ErrorDocument,
		IndexDocument:         external.IndexDocument,
		RedirectAllRequestsTo: external.RedirectAllRequestsTo,
		RoutingRules:          external.RoutingRules,
	}

	if cmp.Equal(confBody, source, cmpopts.IgnoreTypes(document.NoSerde{}), cmpopts.EquateEmpty()) {
		return Updated, nil
	}

	return NeedsUpdate, nil
}

// CreateOrUpdate sends a request to have resource created on AWS.
func (in *WebsiteConfigurationClient) CreateOrUpdate(ctx context.Context, bucket *v1beta1.Bucket) error {
	if bucket.Spec.ForProvider.WebsiteConfiguration == nil {
		return nil
	}
	input := GeneratePutBucketWebsiteInput(meta.GetExternalName(bucket), bucket.Spec.ForProvider.WebsiteConfiguration)
	_, err := in.client.PutBucketWebsite(ctx, input)
	return errorutils.Wrap(err, websitePutFailed)
}

// Delete creates the request to delete the resource on AWS or set it to the default value.
func (in *WebsiteConfigurationClient) Delete(ctx context.Context, bucket *v1beta1.Bucket) error {
	_, err := in.client.DeleteBucketWebsite(ctx,
		&awss3.DeleteBucketWebsiteInput{
			Bucket: pointer.ToOrNilIfZeroValue(meta.GetExternalName(bucket)),
		},
	)
	return errorutils.Wrap(err, websiteDeleteFailed)
}

// LateInitialize is responsible for initializing the resource based on the external value
func (in *WebsiteConfigurationClient) LateInitialize(ctx context.Context, bucket *v1beta1.Bucket) error {
	external, err := in.client.GetBucketWebsite(ctx, &awss3.GetBucketWebsiteInput{Bucket: pointer.ToOrNilIfZeroValue(meta.GetExternalName(bucket))})
	if err != nil {
		return errorutils.Wrap(resource.Ignore(s3.WebsiteConfigurationNotFound, err), websiteGetFailed)
	}
	if external == nil || (external.ErrorDocument == nil && external.IndexDocument == nil && external.RedirectAllRequestsTo == nil && len(external.RoutingRules) == 0) {
		return nil
	}

	fp := &bucket.Spec.ForProvider
	if fp.WebsiteConfiguration == nil {
		fp.WebsiteConfiguration = GenerateLocalWebsiteConfiguration(external)
	}
	return nil
}

// SubresourceExists checks if the subresource this controller manages currently exists
func (in *WebsiteConfigurationClient) SubresourceExists(bucket *v1beta1.Bucket) bool {
	return bucket.Spec.ForProvider.WebsiteConfiguration != nil
}

// GenerateWebsiteConfiguration is responsible for creating the Website Configuration for requests.
func GenerateWebsiteConfiguration(config *v1beta1.WebsiteConfiguration) *types.WebsiteConfiguration {
	wi := &types.WebsiteConfiguration{}
	if config.ErrorDocument != nil {
		wi.ErrorDocument = &types.ErrorDocument{Key: pointer.ToOrNilIfZeroValue(config.ErrorDocument.Key)}
	}
	if config.IndexDocument != nil {
		wi.IndexDocument = &types.IndexDocument{Suffix: pointer.ToOrNilIfZeroValue(config.IndexDocument.Suffix)}
	}
	if config.RedirectAllRequestsTo != nil {
		wi.RedirectAllRequestsTo = &types.RedirectAllRequestsTo{
			HostName: pointer.ToOrNilIfZeroValue(config.RedirectAllRequestsTo.HostName),
			Protocol: types.Protocol(config.RedirectAllRequestsTo.Protocol),
		}
	}
	if config.RoutingRules != nil {
		wi.RoutingRules = make([]types.RoutingRule, len(config.RoutingRules))
		for i, rule := range config.RoutingRules {
			rr := types.RoutingRule{
				Redirect: &types.Redirect{
					HostName:             rule.Redirect.HostName,
					HttpRedirectCode:     rule.Redirect.HTTPRedirectCode,
					Protocol:             types.Protocol(rule.Redirect.Protocol),
					ReplaceKeyPrefixWith: rule.Redirect.ReplaceKeyPrefixWith,
					ReplaceKeyWith:       rule.Redirect.ReplaceKeyWith,
				},
			}
			if rule.Condition != nil {
				rr.Condition = &types.Condition{
					HttpErrorCodeReturnedEquals: rule.Condition.HTTPErrorCodeReturnedEquals,
					KeyPrefixEquals:             rule.Condition.KeyPrefixEquals,
				}
			}
			wi.RoutingRules[i] = rr
		}
	}
	return wi
}

// GenerateLocalWebsiteConfiguration creates the local WebsiteConfiguration from the S3 Client request
func GenerateLocalWebsiteConfiguration(external *awss3.GetBucketWebsiteOutput) *v1beta1.WebsiteConfiguration {
	if external == nil {
		return nil
	}
	config := &v1beta1.WebsiteConfiguration{}
	if external.ErrorDocument != nil {
		config.ErrorDocument = &v1beta1.ErrorDocument{Key: pointer.StringValue(external.ErrorDocument.Key)}
	}
	if external.IndexDocument != nil {
		config.IndexDocument = &v1beta1.IndexDocument{Suffix: pointer.StringValue(external.IndexDocument.Suffix)}
	}
	if external.RedirectAllRequestsTo != nil {
		config.RedirectAllRequestsTo = &v1beta1.RedirectAllRequestsTo{
			HostName: pointer.StringValue(external.RedirectAllRequestsTo.HostName),
			Protocol: string(external.RedirectAllRequestsTo.Protocol),
		}
	}
	if external.RoutingRules != nil {
		config.RoutingRules = make([]v1beta1.RoutingRule, len(external.RoutingRules))
		for i, rr := range external.RoutingRules {
			rule := v1beta1.RoutingRule{}
			if rr.Redirect != nil {
				rule.Redirect = v1beta1.Redirect{
					HostName:             rr.Redirect.HostName,
					HTTPRedirectCode:     rr.Redirect.HttpRedirectCode,
					Protocol:             string(rr.Redirect.Protocol),
					ReplaceKeyPrefixWith: rr.Redirect.ReplaceKeyPrefixWith,
					ReplaceKeyWith:       rr.Redirect.ReplaceKeyWith,
				}
			}
			if rr.Condition != nil {
				rule.Condition = &v1beta1.Condition{
					HTTPErrorCodeReturnedEquals: rr.Condition.HttpErrorCodeReturnedEquals,
					KeyPrefixEquals:             rr.Condition.KeyPrefixEquals,
				}
			}
			config.RoutingRules[i] = rule
		}
	}
	return config
}

// GeneratePutBucketWebsiteInput creates the input for the PutBucketWebsite request for the S3 Client
func GeneratePutBucketWebsiteInput(name string, config *v1beta1.WebsiteConfiguration) *awss3.PutBucketWebsiteInput {
	wi := &awss3.PutBucketWebsiteInput{
		Bucket:               pointer.ToOrNilIfZeroValue(name),
		WebsiteConfiguration: GenerateWebsiteConfiguration(config),
	}
	return wi
}
