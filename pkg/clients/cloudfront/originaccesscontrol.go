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

package cloudfront

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cloudfronttypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
)

// OriginAccessControlClient defines the CloudFront operations an
// OriginAccessControl needs.
type OriginAccessControlClient interface {
	CreateOriginAccessControl(ctx context.Context, input *cloudfront.CreateOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.CreateOriginAccessControlOutput, error)
	GetOriginAccessControl(ctx context.Context, input *cloudfront.GetOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetOriginAccessControlOutput, error)
	UpdateOriginAccessControl(ctx context.Context, input *cloudfront.UpdateOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.UpdateOriginAccessControlOutput, error)
	DeleteOriginAccessControl(ctx context.Context, input *cloudfront.DeleteOriginAccessControlInput, opts ...func(*cloudfront.Options)) (*cloudfront.DeleteOriginAccessControlOutput, error)
}

// NewOriginAccessControlClient creates new CloudFront OriginAccessControlClient with provided AWS Configurations/Credentials
func NewOriginAccessControlClient(cfg aws.Config) OriginAccessControlClient {
	return cloudfront.NewFromConfig(cfg)
}

// IsErrorOriginAccessControlNotFound returns true if the error indicates that
// the origin access control does not exist
func IsErrorOriginAccessControlNotFound(err error) bool {
	var nsoac *cloudfronttypes.NoSuchOriginAccessControl
	return errors.As(err, &nsoac)
}

// GenerateOriginAccessControlConfig builds the origin access control config
// CloudFront expects from the given parameters.
func GenerateOriginAccessControlConfig(p v1alpha1.OriginAccessControlParameters) *cloudfronttypes.OriginAccessControlConfig {
	return &cloudfronttypes.OriginAccessControlConfig{
		Name:                          aws.String(p.Name),
		Description:                   p.Description,
		OriginAccessControlOriginType: cloudfronttypes.OriginAccessControlOriginTypes(p.OriginAccessControlOriginType),
		SigningBehavior:               cloudfronttypes.OriginAccessControlSigningBehaviors(p.SigningBehavior),
		SigningProtocol:               cloudfronttypes.OriginAccessControlSigningProtocols(p.SigningProtocol),
	}
}

// IsOriginAccessControlUpToDate checks whether the observed config matches
// the given parameters.
func IsOriginAccessControlUpToDate(p v1alpha1.OriginAccessControlParameters, conf *cloudfronttypes.OriginAccessControlConfig) bool {
	if conf == nil {
		return false
	}
	return p.Name == aws.ToString(conf.Name) &&
		pointer.StringValue(p.Description) == aws.ToString(conf.Description) &&
		cloudfronttypes.OriginAccessControlOriginTypes(p.OriginAccessControlOriginType) == conf.OriginAccessControlOriginType &&
		cloudfronttypes.OriginAccessControlSigningBehaviors(p.SigningBehavior) == conf.SigningBehavior &&
		cloudfronttypes.OriginAccessControlSigningProtocols(p.SigningProtocol) == conf.SigningProtocol
}

// LateInitializeOriginAccessControl fills the empty fields in
// *v1alpha1.OriginAccessControlParameters with the values seen in the
// observed config.
func LateInitializeOriginAccessControl(p *v1alpha1.OriginAccessControlParameters, conf *cloudfronttypes.OriginAccessControlConfig) {
	if conf == nil {
		return
	}
	if p.Description == nil {
		p.Description = pointer.ToOrNilIfZeroValue(aws.ToString(conf.Description))
	}
}
