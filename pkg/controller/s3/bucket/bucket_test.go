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
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awss3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
	clients3 "github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3"
	s3Testing "github.com/crossplane-contrib/provider-aws-website/pkg/controller/s3/testing"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
)

var errBoom = errors.New("boom")

type bucketArgs struct {
	kube client.Client
	s3   clients3.BucketClient
	cr   *v1beta1.Bucket
}

func bucketExternal(kube client.Client, s3client clients3.BucketClient) *external {
	return &external{
		kube:               kube,
		s3client:           s3client,
		subresourceClients: NewSubresourceClients(s3client),
	}
}

func TestObserve(t *testing.T) {
	type want struct {
		result managed.ExternalObservation
		err    error
	}

	cases := map[string]struct {
		args bucketArgs
		want want
	}{
		"ValidInput": {
			args: bucketArgs{
				s3: s3Testing.Client(),
				cr: s3Testing.Bucket(),
			},
			want: want{
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
					ConnectionDetails: managed.ConnectionDetails{
						xpv1.ResourceCredentialsSecretEndpointKey:  []byte(s3Testing.BucketName),
						v1beta1.ResourceCredentialsSecretRegionKey: []byte(s3Testing.Region),
					},
				},
			},
		},
		"WebsiteBucket": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return &awss3.GetBucketWebsiteOutput{
						ErrorDocument:         generateAWSWebsite().ErrorDocument,
						IndexDocument:         generateAWSWebsite().IndexDocument,
						RedirectAllRequestsTo: generateAWSWebsite().RedirectAllRequestsTo,
						RoutingRules:          generateAWSWebsite().RoutingRules,
					}, nil
				})),
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(generateWebsiteConfig())),
			},
			want: want{
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
					ConnectionDetails: managed.ConnectionDetails{
						xpv1.ResourceCredentialsSecretEndpointKey:           []byte(s3Testing.BucketName),
						v1beta1.ResourceCredentialsSecretRegionKey:          []byte(s3Testing.Region),
						v1beta1.ResourceCredentialsSecretWebsiteEndpointKey: []byte(clients3.WebsiteEndpoint(s3Testing.BucketName, s3Testing.Region)),
					},
				},
			},
		},
		"WebsiteDrift": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return &awss3.GetBucketWebsiteOutput{}, nil
				})),
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(generateWebsiteConfig())),
			},
			want: want{
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: false,
				},
			},
		},
		"ResourceDoesNotExist": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithHeadBucket(func(ctx context.Context, input *awss3.HeadBucketInput, opts []func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
					return nil, &awss3types.NotFound{}
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				result: managed.ExternalObservation{},
			},
		},
		"ClientError": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithHeadBucket(func(ctx context.Context, input *awss3.HeadBucketInput, opts []func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
					return nil, errBoom
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				result: managed.ExternalObservation{},
				err:    errorutils.Wrap(errBoom, errHead),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := bucketExternal(tc.args.kube, tc.args.s3)
			o, err := e.Observe(context.Background(), tc.args.cr)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.result, o); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	type want struct {
		cr  *v1beta1.Bucket
		err error
	}

	cases := map[string]struct {
		args bucketArgs
		want want
	}{
		"ValidInput": {
			args: bucketArgs{
				s3: s3Testing.Client(),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr: s3Testing.Bucket(),
			},
		},
		"AlreadyOwnedByYou": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithCreateBucket(func(ctx context.Context, input *awss3.CreateBucketInput, opts []func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
					return nil, &awss3types.BucketAlreadyOwnedByYou{}
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr: s3Testing.Bucket(),
			},
		},
		"LateInitWebsite": {
			args: bucketArgs{
				kube: &test.MockClient{MockUpdate: test.NewMockUpdateFn(nil)},
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return &awss3.GetBucketWebsiteOutput{
						ErrorDocument:         generateAWSWebsite().ErrorDocument,
						IndexDocument:         generateAWSWebsite().IndexDocument,
						RedirectAllRequestsTo: generateAWSWebsite().RedirectAllRequestsTo,
						RoutingRules:          generateAWSWebsite().RoutingRules,
					}, nil
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(generateWebsiteConfig())),
			},
		},
		"ClientError": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithCreateBucket(func(ctx context.Context, input *awss3.CreateBucketInput, opts []func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
					return nil, errBoom
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr:  s3Testing.Bucket(),
				err: errorutils.Wrap(errBoom, errCreate),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := bucketExternal(tc.args.kube, tc.args.s3)
			_, err := e.Create(context.Background(), tc.args.cr)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr, tc.args.cr, test.EquateConditions()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	type want struct {
		err error
	}

	cases := map[string]struct {
		args bucketArgs
		want want
	}{
		"NothingToUpdate": {
			args: bucketArgs{
				s3: s3Testing.Client(),
				cr: s3Testing.Bucket(),
			},
			want: want{},
		},
		"PutsDriftedWebsite": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return &awss3.GetBucketWebsiteOutput{}, nil
				})),
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(generateWebsiteConfig())),
			},
			want: want{},
		},
		"DeletesRemovedWebsite": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return &awss3.GetBucketWebsiteOutput{
						IndexDocument: generateAWSWebsite().IndexDocument,
					}, nil
				})),
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(nil)),
			},
			want: want{},
		},
		"ObserveError": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithGetBucketWebsite(func(ctx context.Context, input *awss3.GetBucketWebsiteInput, opts []func(*awss3.Options)) (*awss3.GetBucketWebsiteOutput, error) {
					return nil, errBoom
				})),
				cr: s3Testing.Bucket(s3Testing.WithWebConfig(generateWebsiteConfig())),
			},
			want: want{
				err: errorutils.Wrap(errBoom, websiteGetFailed),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := bucketExternal(tc.args.kube, tc.args.s3)
			_, err := e.Update(context.Background(), tc.args.cr)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	type want struct {
		cr  *v1beta1.Bucket
		err error
	}

	cases := map[string]struct {
		args bucketArgs
		want want
	}{
		"ValidInput": {
			args: bucketArgs{
				s3: s3Testing.Client(),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr: s3Testing.Bucket(s3Testing.WithConditions(xpv1.Deleting())),
			},
		},
		"AlreadyGone": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithDeleteBucket(func(ctx context.Context, input *awss3.DeleteBucketInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketOutput, error) {
					return nil, &awss3types.NotFound{}
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr: s3Testing.Bucket(s3Testing.WithConditions(xpv1.Deleting())),
			},
		},
		"ClientError": {
			args: bucketArgs{
				s3: s3Testing.Client(s3Testing.WithDeleteBucket(func(ctx context.Context, input *awss3.DeleteBucketInput, opts []func(*awss3.Options)) (*awss3.DeleteBucketOutput, error) {
					return nil, errBoom
				})),
				cr: s3Testing.Bucket(),
			},
			want: want{
				cr:  s3Testing.Bucket(s3Testing.WithConditions(xpv1.Deleting())),
				err: errBoom,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := bucketExternal(tc.args.kube, tc.args.s3)
			err := e.Delete(context.Background(), tc.args.cr)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr, tc.args.cr, test.EquateConditions()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}
