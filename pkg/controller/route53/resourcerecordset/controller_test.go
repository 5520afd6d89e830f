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

package resourcerecordset

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/crossplane-contrib/provider-aws-website/apis/route53/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/hostedzone"
	hostedzonefake "github.com/crossplane-contrib/provider-aws-website/pkg/clients/hostedzone/fake"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/resourcerecordset"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/resourcerecordset/fake"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
)

var (
	zoneID     = "Z0000000EXAMPLE"
	zoneName   = "example.com."
	recordName = "www.example.com"
	ipAddress  = "203.0.113.10"
	ttl        = int64(300)

	errBoom = errors.New("boom")
)

type args struct {
	kube   *test.MockClient
	client resourcerecordset.Client
	zone   hostedzone.Client
	cr     *v1alpha1.ResourceRecordSet
}

type rrsetModifier func(*v1alpha1.ResourceRecordSet)

func withConditions(c ...xpv1.Condition) rrsetModifier {
	return func(r *v1alpha1.ResourceRecordSet) { r.Status.ConditionedStatus.Conditions = c }
}

func withZoneName(n string) rrsetModifier {
	return func(r *v1alpha1.ResourceRecordSet) {
		r.Spec.ForProvider.ZoneID = nil
		r.Spec.ForProvider.ZoneName = &n
	}
}

func withTTL(t int64) rrsetModifier {
	return func(r *v1alpha1.ResourceRecordSet) { r.Spec.ForProvider.TTL = &t }
}

func instance(m ...rrsetModifier) *v1alpha1.ResourceRecordSet {
	cr := &v1alpha1.ResourceRecordSet{
		Spec: v1alpha1.ResourceRecordSetSpec{
			ForProvider: v1alpha1.ResourceRecordSetParameters{
				ZoneID: &zoneID,
				Type:   "A",
				TTL:    &ttl,
				ResourceRecords: []v1alpha1.ResourceRecord{
					{Value: ipAddress},
				},
			},
		},
	}
	meta.SetExternalName(cr, recordName)
	for _, f := range m {
		f(cr)
	}
	return cr
}

func observedRecordSet() route53types.ResourceRecordSet {
	return route53types.ResourceRecordSet{
		Name: aws.String(recordName + "."),
		Type: route53types.RRTypeA,
		TTL:  &ttl,
		ResourceRecords: []route53types.ResourceRecord{
			{Value: &ipAddress},
		},
	}
}

func TestObserve(t *testing.T) {
	type want struct {
		cr     *v1alpha1.ResourceRecordSet
		result managed.ExternalObservation
		err    error
	}

	cases := map[string]struct {
		args
		want
	}{
		"UpToDate": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockListResourceRecordSets: func(ctx context.Context, input *route53.ListResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
						return &route53.ListResourceRecordSetsOutput{
							ResourceRecordSets: []route53types.ResourceRecordSet{observedRecordSet()},
						}, nil
					},
				},
				cr: instance(),
			},
			want: want{
				cr: instance(withConditions(xpv1.Available())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
				},
			},
		},
		"TTLDrift": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockListResourceRecordSets: func(ctx context.Context, input *route53.ListResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
						return &route53.ListResourceRecordSetsOutput{
							ResourceRecordSets: []route53types.ResourceRecordSet{observedRecordSet()},
						}, nil
					},
				},
				cr: instance(withTTL(60)),
			},
			want: want{
				cr: instance(withTTL(60), withConditions(xpv1.Available())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: false,
				},
			},
		},
		"ZoneResolvedByName": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockListResourceRecordSets: func(ctx context.Context, input *route53.ListResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
						if aws.ToString(input.HostedZoneId) != zoneID {
							return nil, errors.Errorf("unexpected zone id %s", aws.ToString(input.HostedZoneId))
						}
						return &route53.ListResourceRecordSetsOutput{
							ResourceRecordSets: []route53types.ResourceRecordSet{observedRecordSet()},
						}, nil
					},
				},
				zone: &hostedzonefake.MockHostedZoneClient{
					MockListHostedZonesByName: func(ctx context.Context, input *route53.ListHostedZonesByNameInput, opts []func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error) {
						return &route53.ListHostedZonesByNameOutput{
							HostedZones: []route53types.HostedZone{
								{
									Id:   aws.String(hostedzone.IDPrefix + zoneID),
									Name: aws.String(zoneName),
								},
							},
						}, nil
					},
				},
				cr: instance(withZoneName(zoneName)),
			},
			want: want{
				cr: instance(withZoneName(zoneName), withConditions(xpv1.Available())),
				result: managed.ExternalObservation{
					ResourceExists:   true,
					ResourceUpToDate: true,
				},
			},
		},
		"RecordDoesNotExist": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockListResourceRecordSets: func(ctx context.Context, input *route53.ListResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
						return &route53.ListResourceRecordSetsOutput{}, nil
					},
				},
				cr: instance(),
			},
			want: want{
				cr:     instance(),
				result: managed.ExternalObservation{},
			},
		},
		"NoZoneGiven": {
			args: args{
				cr: instance(func(r *v1alpha1.ResourceRecordSet) {
					r.Spec.ForProvider.ZoneID = nil
					r.Spec.ForProvider.ZoneName = nil
				}),
			},
			want: want{
				cr: instance(func(r *v1alpha1.ResourceRecordSet) {
					r.Spec.ForProvider.ZoneID = nil
					r.Spec.ForProvider.ZoneName = nil
				}),
				err: errorutils.Wrap(errors.New(errNoZone), errZone),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockListResourceRecordSets: func(ctx context.Context, input *route53.ListResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
						return nil, errBoom
					},
				},
				cr: instance(),
			},
			want: want{
				cr:  instance(),
				err: errorutils.Wrap(errBoom, errList),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client, zone: tc.zone}
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
		cr     *v1alpha1.ResourceRecordSet
		result managed.ExternalCreation
		err    error
	}

	cases := map[string]struct {
		args
		want
	}{
		"UpsertsRecord": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						change := input.ChangeBatch.Changes[0]
						if change.Action != route53types.ChangeActionUpsert {
							return nil, errors.Errorf("unexpected action %s", change.Action)
						}
						if aws.ToString(change.ResourceRecordSet.Name) != recordName {
							return nil, errors.Errorf("unexpected record name %s", aws.ToString(change.ResourceRecordSet.Name))
						}
						return &route53.ChangeResourceRecordSetsOutput{}, nil
					},
				},
				cr: instance(),
			},
			want: want{
				cr: instance(withConditions(xpv1.Creating())),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						return nil, errBoom
					},
				},
				cr: instance(),
			},
			want: want{
				cr:  instance(withConditions(xpv1.Creating())),
				err: errorutils.Wrap(errBoom, errCreate),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client, zone: tc.zone}
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
		cr     *v1alpha1.ResourceRecordSet
		result managed.ExternalUpdate
		err    error
	}

	cases := map[string]struct {
		args
		want
	}{
		"UpsertsRecord": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						if input.ChangeBatch.Changes[0].Action != route53types.ChangeActionUpsert {
							return nil, errors.Errorf("unexpected action %s", input.ChangeBatch.Changes[0].Action)
						}
						return &route53.ChangeResourceRecordSetsOutput{}, nil
					},
				},
				cr: instance(withTTL(60)),
			},
			want: want{
				cr: instance(withTTL(60)),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						return nil, errBoom
					},
				},
				cr: instance(),
			},
			want: want{
				cr:  instance(),
				err: errorutils.Wrap(errBoom, errUpdate),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client, zone: tc.zone}
			o, err := e.Update(context.Background(), tc.args.cr)

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

func TestDelete(t *testing.T) {
	type want struct {
		cr  *v1alpha1.ResourceRecordSet
		err error
	}

	cases := map[string]struct {
		args
		want
	}{
		"RemovesRecord": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						if input.ChangeBatch.Changes[0].Action != route53types.ChangeActionDelete {
							return nil, errors.Errorf("unexpected action %s", input.ChangeBatch.Changes[0].Action)
						}
						return &route53.ChangeResourceRecordSetsOutput{}, nil
					},
				},
				cr: instance(),
			},
			want: want{
				cr: instance(withConditions(xpv1.Deleting())),
			},
		},
		"RecordAlreadyGone": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						return nil, &route53types.InvalidChangeBatch{}
					},
				},
				cr: instance(),
			},
			want: want{
				cr: instance(withConditions(xpv1.Deleting())),
			},
		},
		"ZoneAlreadyGone": {
			args: args{
				zone: &hostedzonefake.MockHostedZoneClient{
					MockListHostedZonesByName: func(ctx context.Context, input *route53.ListHostedZonesByNameInput, opts []func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error) {
						return &route53.ListHostedZonesByNameOutput{}, nil
					},
				},
				cr: instance(withZoneName(zoneName)),
			},
			want: want{
				cr: instance(withZoneName(zoneName), withConditions(xpv1.Deleting())),
			},
		},
		"ClientError": {
			args: args{
				client: &fake.MockResourceRecordSetClient{
					MockChangeResourceRecordSets: func(ctx context.Context, input *route53.ChangeResourceRecordSetsInput, opts []func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
						return nil, errBoom
					},
				},
				cr: instance(),
			},
			want: want{
				cr:  instance(withConditions(xpv1.Deleting())),
				err: errorutils.Wrap(errBoom, errDelete),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{kube: tc.kube, client: tc.client, zone: tc.zone}
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
