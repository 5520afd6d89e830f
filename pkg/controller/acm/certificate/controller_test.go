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

package certificate

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsacm "github.com/aws/aws-sdk-go-v2/service/acm"
	acmtypes "github.com/aws/aws-sdk-go-v2/service/acm/types"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/acm"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/acm/fake"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
)

var (
	certificateArn = "arn:aws:acm:us-east-1:123456789012:certificate/aaaa"
	replacementArn = "arn:aws:acm:us-east-1:123456789012:certificate/bbbb"
	domainName     = "www.example.com"

	errBoom = errors.New("boom")
)

type args struct {
	kube   client.Client
	client acm.Client
	cr     *v1beta1.Certificate
}

type certificateModifier func(*v1beta1.Certificate)

func withConditions(c ...xpv1.Condition) certificateModifier {
	return func(r *v1beta1.Certificate) { r.Status.ConditionedStatus.Conditions = c }
}

func withExternalName(name string) certificateModifier {
	return func(r *v1beta1.Certificate) { meta.SetExternalName(r, name) }
}

func withDomainName(name string) certificateModifier {
	return func(r *v1beta1.Certificate) { r.Spec.ForProvider.DomainName = name }
}

func withUID(uid string) certificateModifier {
	return func(r *v1beta1.Certificate) { r.UID = types.UID(uid) }
}

func withStatus(s v1beta1.CertificateExternalStatus) certificateModifier {
	return func(r *v1beta1.Certificate) { r.Status.AtProvider = s }
}

func certificate(m ...certificateModifier) *v1beta1.Certificate {
	cr := &v1beta1.Certificate{
		ObjectMeta: metav1.ObjectMeta{UID: "some-uid"},
		Spec: v1beta1.CertificateSpec{
			ForProvider: v1beta1.CertificateParameters{
				DomainName:       domainName,
				ValidationMethod: "DNS",
			},
		},
	}
	for _, f := range m {
		f(cr)
	}
	return cr
}

func issuedCertificate() acmtypes.CertificateDetail {
	return acmtypes.CertificateDetail{
		CertificateArn: aws.String(certificateArn),
		DomainName:     aws.String(domainName),
		Status:         acmtypes.CertificateStatusIssued,
	}
}

func TestObserve(t *testing.T) {
	type want struct {
		cr     *v1beta1.Certificate
		result managed.ExternalObservation
		err    error
	}

	cases := map[string]struct {
		args
		want
	}{
		"VaildInput": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockListTagsForCertificate: func(ctx context.Context, input *awsacm.ListTagsForCertificateInput, opts []func(*awsacm.Options)) (*awsacm.ListTagsForCertificateOutput, error) {
						return &awsacm.ListTagsForCertificateOutput{Tags: []acmtypes.Tag{}}, nil
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						CertificateARN: certificateArn,
						Status:         string(acmtypes.CertificateStatusIssued),
					}),
					withConditions(xpv1.Available())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
				},
			},
		},
		"PendingValidation": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						cd.Status = acmtypes.CertificateStatusPendingValidation
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockListTagsForCertificate: func(ctx context.Context, input *awsacm.ListTagsForCertificateInput, opts []func(*awsacm.Options)) (*awsacm.ListTagsForCertificateOutput, error) {
						return &awsacm.ListTagsForCertificateOutput{Tags: []acmtypes.Tag{}}, nil
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						CertificateARN: certificateArn,
						Status:         string(acmtypes.CertificateStatusPendingValidation),
					}),
					withConditions(xpv1.Creating())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
				},
			},
		},
		"DomainChangeNeedsReplacement": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
				},
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						CertificateARN: certificateArn,
						Status:         string(acmtypes.CertificateStatusIssued),
					}),
					withConditions(xpv1.Available())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: false,
				},
			},
		},
		"NoExternalName": {
			args: args{
				client: &fake.MockCertificateClient{},
				cr:     certificate(),
			},
			want: want{
				cr:     certificate(),
				result: managed.ExternalObservation{},
			},
		},
		"NotFound": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						return nil, &acmtypes.ResourceNotFoundException{}
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr:     certificate(withExternalName(certificateArn)),
				result: managed.ExternalObservation{},
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						return nil, errBoom
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr:  certificate(withExternalName(certificateArn)),
				err: errorutils.Wrap(errBoom, errGet),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client}
			o, err := e.Observe(context.Background(), tc.args.cr)

			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr, tc.args.cr, test.EquateConditions()); diff != "" {
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
		cr     *v1beta1.Certificate
		result managed.ExternalCreation
		err    error
	}

	cases := map[string]struct {
		args
		want
	}{
		"VaildInput": {
			args: args{
				client: &fake.MockCertificateClient{
					MockRequestCertificate: func(ctx context.Context, input *awsacm.RequestCertificateInput, opts []func(*awsacm.Options)) (*awsacm.RequestCertificateOutput, error) {
						if aws.ToString(input.IdempotencyToken) != "someuid" {
							return nil, errors.New("unexpected idempotency token")
						}
						return &awsacm.RequestCertificateOutput{CertificateArn: aws.String(certificateArn)}, nil
					},
				},
				cr: certificate(withUID("some-uid")),
			},
			want: want{
				cr: certificate(
					withUID("some-uid"),
					withExternalName(certificateArn)),
				result: managed.ExternalCreation{},
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockCertificateClient{
					MockRequestCertificate: func(ctx context.Context, input *awsacm.RequestCertificateInput, opts []func(*awsacm.Options)) (*awsacm.RequestCertificateOutput, error) {
						return nil, errBoom
					},
				},
				cr: certificate(),
			},
			want: want{
				cr:  certificate(),
				err: errorutils.Wrap(errBoom, errCreate),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client}
			o, err := e.Create(context.Background(), tc.args.cr)

			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr, tc.args.cr, test.EquateConditions()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.result, o); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	type want struct {
		cr  *v1beta1.Certificate
		err error
	}

	cases := map[string]struct {
		args
		want
	}{
		"TagsInSync": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockListTagsForCertificate: func(ctx context.Context, input *awsacm.ListTagsForCertificateInput, opts []func(*awsacm.Options)) (*awsacm.ListTagsForCertificateOutput, error) {
						return &awsacm.ListTagsForCertificateOutput{Tags: []acmtypes.Tag{}}, nil
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(withExternalName(certificateArn)),
			},
		},
		"AddTags": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockListTagsForCertificate: func(ctx context.Context, input *awsacm.ListTagsForCertificateInput, opts []func(*awsacm.Options)) (*awsacm.ListTagsForCertificateOutput, error) {
						return &awsacm.ListTagsForCertificateOutput{Tags: []acmtypes.Tag{}}, nil
					},
					MockAddTagsToCertificate: func(ctx context.Context, input *awsacm.AddTagsToCertificateInput, opts []func(*awsacm.Options)) (*awsacm.AddTagsToCertificateOutput, error) {
						return &awsacm.AddTagsToCertificateOutput{}, nil
					},
				},
				cr: certificate(
					withExternalName(certificateArn),
					func(r *v1beta1.Certificate) {
						r.Spec.ForProvider.Tags = []v1beta1.Tag{{Key: "Name", Value: "website"}}
					}),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					func(r *v1beta1.Certificate) {
						r.Spec.ForProvider.Tags = []v1beta1.Tag{{Key: "Name", Value: "website"}}
					}),
			},
		},
		"ReplacementRequested": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockRequestCertificate: func(ctx context.Context, input *awsacm.RequestCertificateInput, opts []func(*awsacm.Options)) (*awsacm.RequestCertificateOutput, error) {
						return &awsacm.RequestCertificateOutput{CertificateArn: aws.String(replacementArn)}, nil
					},
				},
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					})),
			},
		},
		"ReplacementStillPending": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						if aws.ToString(input.CertificateArn) == replacementArn {
							cd.CertificateArn = aws.String(replacementArn)
							cd.DomainName = aws.String("other.example.com")
							cd.Status = acmtypes.CertificateStatusPendingValidation
						}
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
				},
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					})),
			},
			want: want{
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					})),
			},
		},
		"ReplacementIssuedTakesOver": {
			args: args{
				kube: &test.MockClient{MockUpdate: test.NewMockUpdateFn(nil)},
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						cd := issuedCertificate()
						if aws.ToString(input.CertificateArn) == replacementArn {
							cd.CertificateArn = aws.String(replacementArn)
							cd.DomainName = aws.String("other.example.com")
						}
						return &awsacm.DescribeCertificateOutput{Certificate: &cd}, nil
					},
					MockDeleteCertificate: func(ctx context.Context, input *awsacm.DeleteCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DeleteCertificateOutput, error) {
						if aws.ToString(input.CertificateArn) != certificateArn {
							return nil, errors.New("unexpected certificate deleted")
						}
						return &awsacm.DeleteCertificateOutput{}, nil
					},
				},
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					})),
			},
			want: want{
				cr: certificate(
					withDomainName("other.example.com"),
					withExternalName(replacementArn),
					withStatus(v1beta1.CertificateExternalStatus{})),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDescribeCertificate: func(ctx context.Context, input *awsacm.DescribeCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DescribeCertificateOutput, error) {
						return nil, errBoom
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr:  certificate(withExternalName(certificateArn)),
				err: errorutils.Wrap(errBoom, errGet),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client}
			_, err := e.Update(context.Background(), tc.args.cr)

			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr, tc.args.cr, test.EquateConditions()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	type want struct {
		cr  *v1beta1.Certificate
		err error
	}

	cases := map[string]struct {
		args
		want
	}{
		"VaildInput": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDeleteCertificate: func(ctx context.Context, input *awsacm.DeleteCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DeleteCertificateOutput, error) {
						return &awsacm.DeleteCertificateOutput{}, nil
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withConditions(xpv1.Deleting())),
			},
		},
		"DeletesPendingReplacement": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDeleteCertificate: func(ctx context.Context, input *awsacm.DeleteCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DeleteCertificateOutput, error) {
						switch aws.ToString(input.CertificateArn) {
						case certificateArn, replacementArn:
							return &awsacm.DeleteCertificateOutput{}, nil
						}
						return nil, errors.New("unexpected certificate deleted")
					},
				},
				cr: certificate(
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					})),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withStatus(v1beta1.CertificateExternalStatus{
						ReplacementCertificateARN: replacementArn,
					}),
					withConditions(xpv1.Deleting())),
			},
		},
		"AlreadyGone": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDeleteCertificate: func(ctx context.Context, input *awsacm.DeleteCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DeleteCertificateOutput, error) {
						return nil, &acmtypes.ResourceNotFoundException{}
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withConditions(xpv1.Deleting())),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockCertificateClient{
					MockDeleteCertificate: func(ctx context.Context, input *awsacm.DeleteCertificateInput, opts []func(*awsacm.Options)) (*awsacm.DeleteCertificateOutput, error) {
						return nil, errBoom
					},
				},
				cr: certificate(withExternalName(certificateArn)),
			},
			want: want{
				cr: certificate(
					withExternalName(certificateArn),
					withConditions(xpv1.Deleting())),
				err: errorutils.Wrap(errBoom, errDelete),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client}
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
