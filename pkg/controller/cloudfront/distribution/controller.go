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

package distribution

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscloudfront "github.com/aws/aws-sdk-go-v2/service/cloudfront"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/connection"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
	providerv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/cloudfront"
	"github.com/crossplane-contrib/provider-aws-website/pkg/features"
	connectaws "github.com/crossplane-contrib/provider-aws-website/pkg/utils/connect/aws"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/controller"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "The managed resource is not a Distribution resource"
	errGet              = "failed to get the Distribution"
	errGetConfig        = "failed to get the Distribution config"
	errCreate           = "failed to create the Distribution"
	errUpdate           = "failed to update the Distribution"
	errDisable          = "failed to disable the Distribution"
	errDelete           = "failed to delete the Distribution"
)

// stateDeployed is the distribution status once a configuration change has
// propagated to all edge locations.
const stateDeployed = "Deployed"

// SetupDistribution adds a controller that reconciles Distributions. A
// deploying distribution is polled until it settles, so the poll interval is
// jittered to spread the resulting CloudFront API load.
func SetupDistribution(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.DistributionGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), providerv1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{kube: mgr.GetClient(), newClientFn: cloudfront.NewDistributionClient}),
		managed.WithReferenceResolver(managed.NewAPISimpleReferenceResolver(mgr.GetClient())),
		managed.WithPollInterval(o.PollInterval),
		managed.WithPollJitterHook(o.PollIntervalJitter),
		managed.WithLogger(o.Logger.WithValues("controller", name)),
		managed.WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(name))),
		managed.WithConnectionPublishers(cps...),
	}

	if o.Features.Enabled(features.EnableAlphaManagementPolicies) {
		reconcilerOpts = append(reconcilerOpts, managed.WithManagementPolicies())
	}

	r := managed.NewReconciler(mgr,
		resource.ManagedKind(v1alpha1.DistributionGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1alpha1.Distribution{}).
		Complete(r)
}

type connector struct {
	kube        client.Client
	newClientFn func(config aws.Config) cloudfront.DistributionClient
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cr, ok := mg.(*v1alpha1.Distribution)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := connectaws.GetConfig(ctx, c.kube, mg, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClientFn(*cfg), kube: c.kube}, nil
}

type external struct {
	kube   client.Client
	client cloudfront.DistributionClient
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) {
	cr, ok := mg.(*v1alpha1.Distribution)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	if meta.GetExternalName(cr) == "" {
		return managed.ExternalObservation{}, nil
	}

	response, err := e.client.GetDistribution(ctx, &awscloudfront.GetDistributionInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(cloudfront.IsErrorDistributionNotFound, err), errGet)
	}
	dist := response.Distribution

	current := cr.Spec.ForProvider.DeepCopy()
	cloudfront.LateInitialize(&cr.Spec.ForProvider, dist.DistributionConfig)

	cr.Status.AtProvider = cloudfront.GenerateObservation(dist, aws.ToString(response.ETag))

	if cr.Status.AtProvider.Status == stateDeployed {
		cr.Status.SetConditions(xpv1.Available())
	} else {
		// The change has been accepted but is still rolling out to the edge.
		cr.Status.SetConditions(xpv1.Creating())
	}

	return managed.ExternalObservation{
		ResourceExists:          true,
		ResourceUpToDate:        cloudfront.IsUpToDate(cr.Spec.ForProvider, dist.DistributionConfig),
		ResourceLateInitialized: !cmp.Equal(current, &cr.Spec.ForProvider),
		ConnectionDetails: managed.ConnectionDetails{
			"domainName":   []byte(cr.Status.AtProvider.DomainName),
			"hostedZoneID": []byte(cr.Status.AtProvider.HostedZoneID),
		},
	}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1alpha1.Distribution)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	// The caller reference makes the create idempotent. CloudFront returns
	// the existing distribution when a retry carries the same reference.
	response, err := e.client.CreateDistribution(ctx, &awscloudfront.CreateDistributionInput{
		DistributionConfig: cloudfront.GenerateDistributionConfig(cr.Spec.ForProvider, string(cr.UID)),
	})
	if err != nil {
		return managed.ExternalCreation{}, errorutils.Wrap(err, errCreate)
	}

	meta.SetExternalName(cr, aws.ToString(response.Distribution.Id))
	return managed.ExternalCreation{}, nil
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) {
	cr, ok := mg.(*v1alpha1.Distribution)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	response, err := e.client.GetDistributionConfig(ctx, &awscloudfront.GetDistributionConfigInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errGetConfig)
	}

	conf := response.DistributionConfig
	cloudfront.OverlayDistributionConfig(conf, cr.Spec.ForProvider)

	_, err = e.client.UpdateDistribution(ctx, &awscloudfront.UpdateDistributionInput{
		Id:                 aws.String(meta.GetExternalName(cr)),
		IfMatch:            response.ETag,
		DistributionConfig: conf,
	})
	return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
}

// Delete disables the distribution first. CloudFront refuses to delete an
// enabled distribution, and a disabled one only once the disablement has
// been deployed, so deletion spans several reconciliations.
func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1alpha1.Distribution)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Deleting())

	response, err := e.client.GetDistribution(ctx, &awscloudfront.GetDistributionInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return errorutils.Wrap(resource.Ignore(cloudfront.IsErrorDistributionNotFound, err), errGet)
	}
	dist := response.Distribution

	if aws.ToBool(dist.DistributionConfig.Enabled) {
		dist.DistributionConfig.Enabled = aws.Bool(false)
		_, err := e.client.UpdateDistribution(ctx, &awscloudfront.UpdateDistributionInput{
			Id:                 dist.Id,
			IfMatch:            response.ETag,
			DistributionConfig: dist.DistributionConfig,
		})
		return errorutils.Wrap(err, errDisable)
	}

	if aws.ToString(dist.Status) != stateDeployed {
		// Still disabling, try again on the next reconcile.
		return nil
	}

	_, err = e.client.DeleteDistribution(ctx, &awscloudfront.DeleteDistributionInput{
		Id:      dist.Id,
		IfMatch: response.ETag,
	})
	return errorutils.Wrap(resource.Ignore(cloudfront.IsErrorDistributionNotFound, err), errDelete)
}
