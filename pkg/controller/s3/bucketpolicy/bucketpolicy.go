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

package bucketpolicy

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/connection"
	"github.com/crossplane/crossplane-runtime/pkg/controller"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1alpha3"
	providerv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/s3"
	"github.com/crossplane-contrib/provider-aws-website/pkg/features"
	connectaws "github.com/crossplane-contrib/provider-aws-website/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
	policyutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/policy"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "The managed resource is not a BucketPolicy resource"
	errAttach           = "failed to attach the policy to bucket"
	errDelete           = "failed to delete the policy for bucket"
	errGet              = "failed to get the policy for bucket"
	errUpdate           = "failed to update the policy for bucket"
	errNotSpecified     = "failed to format bucketPolicy, no rawPolicy or policy specified"
)

// SetupBucketPolicy adds a controller that reconciles BucketPolicies.
func SetupBucketPolicy(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha3.BucketPolicyGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), providerv1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{kube: mgr.GetClient(), newClientFn: s3.NewBucketPolicyClient}),
		managed.WithReferenceResolver(managed.NewAPISimpleReferenceResolver(mgr.GetClient())),
		managed.WithPollInterval(o.PollInterval),
		managed.WithLogger(o.Logger.WithValues("controller", name)),
		managed.WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(name))),
		managed.WithConnectionPublishers(cps...),
	}

	if o.Features.Enabled(features.EnableAlphaManagementPolicies) {
		reconcilerOpts = append(reconcilerOpts, managed.WithManagementPolicies())
	}

	r := managed.NewReconciler(mgr,
		resource.ManagedKind(v1alpha3.BucketPolicyGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1alpha3.BucketPolicy{}).
		Complete(r)
}

type connector struct {
	kube        client.Client
	newClientFn func(config aws.Config) s3.BucketPolicyClient
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cr, ok := mg.(*v1alpha3.BucketPolicy)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := connectaws.GetConfig(ctx, c.kube, mg, cr.Spec.Parameters.Region)
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClientFn(*cfg), kube: c.kube}, nil
}

type external struct {
	kube   client.Client
	client s3.BucketPolicyClient
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) {
	cr, ok := mg.(*v1alpha3.BucketPolicy)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	resp, err := e.client.GetBucketPolicy(ctx, &awss3.GetBucketPolicyInput{
		Bucket: cr.Spec.Parameters.BucketName,
	})
	if err != nil {
		if s3.IsErrorBucketNotFound(err) {
			return managed.ExternalObservation{}, nil
		}
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(s3.IsErrorPolicyNotFound, err), errGet)
	}

	upToDate, err := e.isUpToDate(cr, resp.Policy)
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errGet)
	}

	cr.SetConditions(xpv1.Available())

	return managed.ExternalObservation{
		ResourceExists:   true,
		ResourceUpToDate: upToDate,
	}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1alpha3.BucketPolicy)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	cr.SetConditions(xpv1.Creating())

	policy, err := formatPolicy(cr)
	if err != nil {
		return managed.ExternalCreation{}, errorutils.Wrap(err, errAttach)
	}

	_, err = e.client.PutBucketPolicy(ctx, &awss3.PutBucketPolicyInput{
		Bucket: cr.Spec.Parameters.BucketName,
		Policy: policy,
	})
	return managed.ExternalCreation{}, errorutils.Wrap(err, errAttach)
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) {
	cr, ok := mg.(*v1alpha3.BucketPolicy)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	policy, err := formatPolicy(cr)
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
	}

	_, err = e.client.PutBucketPolicy(ctx, &awss3.PutBucketPolicyInput{
		Bucket: cr.Spec.Parameters.BucketName,
		Policy: policy,
	})
	return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
}

func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1alpha3.BucketPolicy)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.SetConditions(xpv1.Deleting())

	_, err := e.client.DeleteBucketPolicy(ctx, &awss3.DeleteBucketPolicyInput{
		Bucket: cr.Spec.Parameters.BucketName,
	})
	if s3.IsErrorBucketNotFound(err) {
		return nil
	}
	return errorutils.Wrap(resource.Ignore(s3.IsErrorPolicyNotFound, err), errDelete)
}

// isUpToDate compares the spec policy to the external one semantically, so
// that formatting and statement ordering differences don't register as drift.
func (e *external) isUpToDate(cr *v1alpha3.BucketPolicy, external *string) (bool, error) {
	if cr.Spec.Parameters.Policy != nil {
		diff, err := s3.DiffParsedPolicies(cr.Spec.Parameters.Policy, external)
		if err != nil {
			return false, err
		}
		return diff == "", nil
	}
	if cr.Spec.Parameters.RawPolicy != nil {
		return policyutils.ArePolicyDocumentsEqual(pointer.StringValue(cr.Spec.Parameters.RawPolicy), pointer.StringValue(external)), nil
	}
	return false, errors.New(errNotSpecified)
}

// formatPolicy renders the policy in the spec to the JSON document S3 expects.
func formatPolicy(cr *v1alpha3.BucketPolicy) (*string, error) {
	if cr == nil {
		return nil, errors.New(errNotSpecified)
	}
	switch {
	case cr.Spec.Parameters.RawPolicy != nil:
		return cr.Spec.Parameters.RawPolicy, nil
	case cr.Spec.Parameters.Policy != nil:
		return s3.FormatPolicy(cr.Spec.Parameters.Policy)
	}
	return nil, errors.New(errNotSpecified)
}
