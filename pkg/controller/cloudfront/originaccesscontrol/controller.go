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

package originaccesscontrol

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscloudfront "github.com/aws/aws-sdk-go-v2/service/cloudfront"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/connection"
	"github.com/crossplane/crossplane-runtime/pkg/controller"
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
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "The managed resource is not an OriginAccessControl resource"
	errGet              = "failed to get the OriginAccessControl"
	errCreate           = "failed to create the OriginAccessControl"
	errUpdate           = "failed to update the OriginAccessControl"
	errDelete           = "failed to delete the OriginAccessControl"
)

// SetupOriginAccessControl adds a controller that reconciles
// OriginAccessControls.
func SetupOriginAccessControl(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.OriginAccessControlGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), providerv1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{kube: mgr.GetClient(), newClientFn: cloudfront.NewOriginAccessControlClient}),
		managed.WithPollInterval(o.PollInterval),
		managed.WithLogger(o.Logger.WithValues("controller", name)),
		managed.WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(name))),
		managed.WithConnectionPublishers(cps...),
	}

	if o.Features.Enabled(features.EnableAlphaManagementPolicies) {
		reconcilerOpts = append(reconcilerOpts, managed.WithManagementPolicies())
	}

	r := managed.NewReconciler(mgr,
		resource.ManagedKind(v1alpha1.OriginAccessControlGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1alpha1.OriginAccessControl{}).
		Complete(r)
}

type connector struct {
	kube        client.Client
	newClientFn func(config aws.Config) cloudfront.OriginAccessControlClient
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cr, ok := mg.(*v1alpha1.OriginAccessControl)
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
	client cloudfront.OriginAccessControlClient
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) {
	cr, ok := mg.(*v1alpha1.OriginAccessControl)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	if meta.GetExternalName(cr) == "" {
		return managed.ExternalObservation{}, nil
	}

	response, err := e.client.GetOriginAccessControl(ctx, &awscloudfront.GetOriginAccessControlInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(cloudfront.IsErrorOriginAccessControlNotFound, err), errGet)
	}
	conf := response.OriginAccessControl.OriginAccessControlConfig

	current := cr.Spec.ForProvider.DeepCopy()
	cloudfront.LateInitializeOriginAccessControl(&cr.Spec.ForProvider, conf)

	cr.Status.AtProvider = v1alpha1.OriginAccessControlExternalStatus{
		ID:   aws.ToString(response.OriginAccessControl.Id),
		ETag: aws.ToString(response.ETag),
	}
	cr.Status.SetConditions(xpv1.Available())

	return managed.ExternalObservation{
		ResourceExists:          true,
		ResourceUpToDate:        cloudfront.IsOriginAccessControlUpToDate(cr.Spec.ForProvider, conf),
		ResourceLateInitialized: !cmp.Equal(current, &cr.Spec.ForProvider),
	}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1alpha1.OriginAccessControl)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	response, err := e.client.CreateOriginAccessControl(ctx, &awscloudfront.CreateOriginAccessControlInput{
		OriginAccessControlConfig: cloudfront.GenerateOriginAccessControlConfig(cr.Spec.ForProvider),
	})
	if err != nil {
		return managed.ExternalCreation{}, errorutils.Wrap(err, errCreate)
	}

	meta.SetExternalName(cr, aws.ToString(response.OriginAccessControl.Id))
	return managed.ExternalCreation{}, nil
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) {
	cr, ok := mg.(*v1alpha1.OriginAccessControl)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	// Updates are conditional on the config's current ETag. The one in the
	// status may be stale by now, so fetch a fresh one.
	response, err := e.client.GetOriginAccessControl(ctx, &awscloudfront.GetOriginAccessControlInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errGet)
	}

	_, err = e.client.UpdateOriginAccessControl(ctx, &awscloudfront.UpdateOriginAccessControlInput{
		Id:                        aws.String(meta.GetExternalName(cr)),
		IfMatch:                   response.ETag,
		OriginAccessControlConfig: cloudfront.GenerateOriginAccessControlConfig(cr.Spec.ForProvider),
	})
	return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
}

func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1alpha1.OriginAccessControl)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Deleting())

	response, err := e.client.GetOriginAccessControl(ctx, &awscloudfront.GetOriginAccessControlInput{
		Id: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return errorutils.Wrap(resource.Ignore(cloudfront.IsErrorOriginAccessControlNotFound, err), errGet)
	}

	_, err = e.client.DeleteOriginAccessControl(ctx, &awscloudfront.DeleteOriginAccessControlInput{
		Id:      aws.String(meta.GetExternalName(cr)),
		IfMatch: response.ETag,
	})
	return errorutils.Wrap(resource.Ignore(cloudfront.IsErrorOriginAccessControlNotFound, err), errDelete)
}
