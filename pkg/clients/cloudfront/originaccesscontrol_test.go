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
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cloudfronttypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/smithy-go/document"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
)

func originAccessControlParameters(m ...func(*v1alpha1.OriginAccessControlParameters)) v1alpha1.OriginAccessControlParameters {
	p := v1alpha1.OriginAccessControlParameters{
		Region:                        "us-east-1",
		Name:                          "example-com-site",
		Description:                   aws.String("signs origin requests for the website bucket"),
		OriginAccessControlOriginType: "s3",
		SigningBehavior:               "always",
		SigningProtocol:               "sigv4",
	}
	for _, f := range m {
		f(&p)
	}
	return p
}

func originAccessControlConfig(m ...func(*cloudfronttypes.OriginAccessControlConfig)) *cloudfronttypes.OriginAccessControlConfig {
	conf := &cloudfronttypes.OriginAccessControlConfig{
		Name:                          aws.String("example-com-site"),
		Description:                   aws.String("signs origin requests for the website bucket"),
		OriginAccessControlOriginType: cloudfronttypes.OriginAccessControlOriginTypesS3,
		SigningBehavior:               cloudfronttypes.OriginAccessControlSigningBehaviorsAlways,
		SigningProtocol:               cloudfronttypes.OriginAccessControlSigningProtocolsSigv4,
	}
	for _, f := range m {
		f(conf)
	}
	return conf
}

func TestGenerateOriginAccessControlConfig(t *testing.T) {
	cases := map[string]struct {
		p    v1alpha1.OriginAccessControlParameters
		want *cloudfronttypes.OriginAccessControlConfig
	}{
		"AllFields": {
			p:    originAccessControlParameters(),
			want: originAccessControlConfig(),
		},
		"NoDescription": {
			p: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Description = nil
			}),
			want: originAccessControlConfig(func(c *cloudfronttypes.OriginAccessControlConfig) {
				c.Description = nil
			}),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := GenerateOriginAccessControlConfig(tc.p)
			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateOriginAccessControlConfig(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestIsOriginAccessControlUpToDate(t *testing.T) {
	cases := map[string]struct {
		p    v1alpha1.OriginAccessControlParameters
		conf *cloudfronttypes.OriginAccessControlConfig
		want bool
	}{
		"UpToDate": {
			p:    originAccessControlParameters(),
			conf: originAccessControlConfig(),
			want: true,
		},
		"NilConfig": {
			p:    originAccessControlParameters(),
			conf: nil,
			want: false,
		},
		"DifferentName": {
			p: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Name = "example-com-assets"
			}),
			conf: originAccessControlConfig(),
			want: false,
		},
		"DifferentDescription": {
			p: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Description = aws.String("bucket access identity")
			}),
			conf: originAccessControlConfig(),
			want: false,
		},
		"DifferentSigningBehavior": {
			p: originAccessControlParameters(),
			conf: originAccessControlConfig(func(c *cloudfronttypes.OriginAccessControlConfig) {
				c.SigningBehavior = cloudfronttypes.OriginAccessControlSigningBehaviorsNever
			}),
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := IsOriginAccessControlUpToDate(tc.p, tc.conf); got != tc.want {
				t.Errorf("IsOriginAccessControlUpToDate(...): want %t, got %t", tc.want, got)
			}
		})
	}
}

func TestLateInitializeOriginAccessControl(t *testing.T) {
	cases := map[string]struct {
		p    v1alpha1.OriginAccessControlParameters
		conf *cloudfronttypes.OriginAccessControlConfig
		want v1alpha1.OriginAccessControlParameters
	}{
		"FillsDescription": {
			p: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Description = nil
			}),
			conf: originAccessControlConfig(),
			want: originAccessControlParameters(),
		},
		"KeepsDescription": {
			p: originAccessControlParameters(),
			conf: originAccessControlConfig(func(c *cloudfronttypes.OriginAccessControlConfig) {
				c.Description = aws.String("bucket access identity")
			}),
			want: originAccessControlParameters(),
		},
		"EmptyDescription": {
			p: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Description = nil
			}),
			conf: originAccessControlConfig(func(c *cloudfronttypes.OriginAccessControlConfig) {
				c.Description = nil
			}),
			want: originAccessControlParameters(func(p *v1alpha1.OriginAccessControlParameters) {
				p.Description = nil
			}),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			LateInitializeOriginAccessControl(&tc.p, tc.conf)
			if diff := cmp.Diff(tc.want, tc.p); diff != "" {
				t.Errorf("LateInitializeOriginAccessControl(...): -want, +got:\n%s", diff)
			}
		})
	}
}
