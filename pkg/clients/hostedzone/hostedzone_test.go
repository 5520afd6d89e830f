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

package hostedzone

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/document"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/crossplane-contrib/provider-aws-website/apis/route53/v1alpha1"
)

var errBoom = errors.New("boom")

// listZonesClient stubs out the one call LookupZoneID makes.
type listZonesClient struct {
	Client
	list func(input *route53.ListHostedZonesByNameInput) (*route53.ListHostedZonesByNameOutput, error)
}

func (c *listZonesClient) ListHostedZonesByName(_ context.Context, input *route53.ListHostedZonesByNameInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error) {
	return c.list(input)
}

func TestIsErrorNoSuchHostedZone(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"validError": {
			err:  &route53types.NoSuchHostedZone{},
			want: true,
		},
		"lookupError": {
			err:  &NotFoundError{},
			want: true,
		},
		"invalidAwsError": {
			err:  &smithy.GenericAPIError{Code: "something"},
			want: false,
		},
		"randomError": {
			err:  errors.New("the specified hosted zone does not exist"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupZoneID(t *testing.T) {
	zone := func(name, id string, private bool) route53types.HostedZone {
		return route53types.HostedZone{
			Name:   aws.String(name),
			Id:     aws.String(IDPrefix + id),
			Config: &route53types.HostedZoneConfig{PrivateZone: private},
		}
	}

	type args struct {
		name  string
		zones []route53types.HostedZone
		err   error
	}

	type want struct {
		id  string
		err error
	}

	cases := map[string]struct {
		args
		want
	}{
		"SingleMatch": {
			args: args{
				name:  "example.com",
				zones: []route53types.HostedZone{zone("example.com.", "Z1EXAMPLE", false)},
			},
			want: want{id: "Z1EXAMPLE"},
		},
		"IgnoresFollowingZones": {
			args: args{
				name: "example.com.",
				zones: []route53types.HostedZone{
					zone("example.com.", "Z1EXAMPLE", false),
					zone("z.example.com.", "Z2EXAMPLE", false),
				},
			},
			want: want{id: "Z1EXAMPLE"},
		},
		"SkipsPrivateZones": {
			args: args{
				name: "example.com",
				zones: []route53types.HostedZone{
					zone("example.com.", "Z1PRIVATE", true),
					zone("example.com.", "Z2PUBLIC", false),
				},
			},
			want: want{id: "Z2PUBLIC"},
		},
		"NoMatch": {
			args: args{
				name:  "example.com",
				zones: []route53types.HostedZone{zone("example.net.", "Z1EXAMPLE", false)},
			},
			want: want{err: &NotFoundError{}},
		},
		"Ambiguous": {
			args: args{
				name: "example.com",
				zones: []route53types.HostedZone{
					zone("example.com.", "Z1EXAMPLE", false),
					zone("example.com.", "Z2EXAMPLE", false),
				},
			},
			want: want{err: errors.New("expected a single hosted zone named example.com., got 2")},
		},
		"ListError": {
			args: args{
				name: "example.com",
				err:  errBoom,
			},
			want: want{err: errBoom},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := &listZonesClient{list: func(input *route53.ListHostedZonesByNameInput) (*route53.ListHostedZonesByNameOutput, error) {
				if tc.args.err != nil {
					return nil, tc.args.err
				}
				if diff := cmp.Diff(appendDot(tc.args.name), aws.ToString(input.DNSName)); diff != "" {
					t.Errorf("input.DNSName: -want, +got:\n%s", diff)
				}
				return &route53.ListHostedZonesByNameOutput{HostedZones: tc.args.zones}, nil
			}}
			id, err := LookupZoneID(context.Background(), c, tc.args.name)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("LookupZoneID(...): -want error, +got error:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.id, id); diff != "" {
				t.Errorf("LookupZoneID(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestIsUpToDate(t *testing.T) {
	type args struct {
		spec v1alpha1.HostedZoneParameters
		obs  route53types.HostedZone
	}

	cases := map[string]struct {
		args args
		want bool
	}{
		"NoConfig": {
			args: args{},
			want: true,
		},
		"SameComment": {
			args: args{
				spec: v1alpha1.HostedZoneParameters{Config: &v1alpha1.Config{Comment: aws.String("website zone")}},
				obs:  route53types.HostedZone{Config: &route53types.HostedZoneConfig{Comment: aws.String("website zone")}},
			},
			want: true,
		},
		"DifferentComment": {
			args: args{
				spec: v1alpha1.HostedZoneParameters{Config: &v1alpha1.Config{Comment: aws.String("website zone")}},
				obs:  route53types.HostedZone{Config: &route53types.HostedZoneConfig{Comment: aws.String("managed by terraform")}},
			},
			want: false,
		},
		"CommentRemoved": {
			args: args{
				spec: v1alpha1.HostedZoneParameters{Config: &v1alpha1.Config{}},
				obs:  route53types.HostedZone{Config: &route53types.HostedZoneConfig{Comment: aws.String("website zone")}},
			},
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := IsUpToDate(tc.args.spec, tc.args.obs); got != tc.want {
				t.Errorf("IsUpToDate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAreTagsUpToDate(t *testing.T) {
	type args struct {
		spec map[string]string
		obs  []route53types.Tag
	}

	type want struct {
		added    []route53types.Tag
		removed  []string
		upToDate bool
	}

	cases := map[string]struct {
		args
		want
	}{
		"UpToDate": {
			args: args{
				spec: map[string]string{"Name": "website"},
				obs:  []route53types.Tag{{Key: aws.String("Name"), Value: aws.String("website")}},
			},
			want: want{added: []route53types.Tag{}, removed: []string{}, upToDate: true},
		},
		"MissingTag": {
			args: args{
				spec: map[string]string{"Name": "website"},
			},
			want: want{
				added:   []route53types.Tag{{Key: aws.String("Name"), Value: aws.String("website")}},
				removed: []string{},
			},
		},
		"StaleTag": {
			args: args{
				obs: []route53types.Tag{{Key: aws.String("env"), Value: aws.String("dev")}},
			},
			want: want{added: []route53types.Tag{}, removed: []string{"env"}},
		},
		"ChangedValue": {
			args: args{
				spec: map[string]string{"env": "prod"},
				obs:  []route53types.Tag{{Key: aws.String("env"), Value: aws.String("dev")}},
			},
			want: want{
				added:   []route53types.Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
				removed: []string{"env"},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			added, removed, upToDate := AreTagsUpToDate(tc.args.spec, tc.args.obs)
			if diff := cmp.Diff(tc.want.added, added, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("AreTagsUpToDate(...) added: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.removed, removed); diff != "" {
				t.Errorf("AreTagsUpToDate(...) removed: -want, +got:\n%s", diff)
			}
			if upToDate != tc.want.upToDate {
				t.Errorf("AreTagsUpToDate(...) = %v, want %v", upToDate, tc.want.upToDate)
			}
		})
	}
}

func TestGenerateCreateHostedZoneInput(t *testing.T) {
	cases := map[string]struct {
		cr   *v1alpha1.HostedZone
		want *route53.CreateHostedZoneInput
	}{
		"ConfiguredZone": {
			cr: &v1alpha1.HostedZone{
				ObjectMeta: metav1.ObjectMeta{UID: types.UID("3750c4e5-2f3e-4d9f-9d07-bc0f94e47c52")},
				Spec: v1alpha1.HostedZoneSpec{
					ForProvider: v1alpha1.HostedZoneParameters{
						Name: "example.com.",
						Config: &v1alpha1.Config{
							Comment:     aws.String("static website zone"),
							PrivateZone: aws.Bool(false),
						},
					},
				},
			},
			want: &route53.CreateHostedZoneInput{
				CallerReference: aws.String("3750c4e5-2f3e-4d9f-9d07-bc0f94e47c52"),
				Name:            aws.String("example.com."),
				HostedZoneConfig: &route53types.HostedZoneConfig{
					Comment:     aws.String("static website zone"),
					PrivateZone: false,
				},
			},
		},
		"NoConfig": {
			cr: &v1alpha1.HostedZone{
				ObjectMeta: metav1.ObjectMeta{UID: types.UID("uid")},
				Spec: v1alpha1.HostedZoneSpec{
					ForProvider: v1alpha1.HostedZoneParameters{Name: "example.com."},
				},
			},
			want: &route53.CreateHostedZoneInput{
				CallerReference: aws.String("uid"),
				Name:            aws.String("example.com."),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := GenerateCreateHostedZoneInput(tc.cr)
			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateCreateHostedZoneInput(...): -want, +got:\n%s", diff)
			}
		})
	}
}
