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

	"github.com/aws/aws-sdk-go-v2/aws"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
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

	"github.com/crossplane-contrib/provider-aws-website/apis/route53/v1alpha1"
	providerv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/hostedzone"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/resourcerecordset"
	"github.com/crossplane-contrib/provider-aws-website/pkg/features"
	connectaws "github.com/crossplane-contrib/provider-aws-website/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "The managed resource is not an ResourceRecordSet resource"
	errList             = "failed to list the ResourceRecordSet resource"
	errCreate           = "failed to create the ResourceRecordSet resource"
	errUpdate           = "failed to update the ResourceRecordSet resource"
	errDelete           = "failed to delete the ResourceRecordSet resource"
	errState            = "failed to determine resource state"
	errZone             = "failed to resolve the hosted zone of the ResourceRecordSet resource"
	errNoZone           = "neither zoneId nor zoneName is set"
)

// SetupResourceRecordSet adds a controller that reconciles ResourceRecordSets.
func SetupResourceRecordSet(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.ResourceRecordSetGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), providerv1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{
			kube:            mgr.GetClient(),
			newClientFn:     resourcerecordset.NewClient,
			newZoneClientFn: hostedzone.NewClient,
		}),
		managed.WithInitializers(managed.NewNameAsExternalName(mgr.GetClient())),
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
		resource.ManagedKind(v1alpha1.ResourceRecordSetGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1alpha1.ResourceRecordSet{}).
		Complete(r)
}

type connector struct {
	kube            client.Client
	newClientFn     func(config aws.Config) resourcerecordset.Client
	newZoneClientFn func(config aws.Config) hostedzone.Client
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cfg, err := connectaws.GetConfig(ctx, c.kube, mg, "aws-global")
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClientFn(*cfg), zone: c.newZoneClientFn(*cfg), kube: c.kube}, nil
}

type external struct {
	kube   client.Client
	client resourcerecordset.Client
	zone   hostedzone.Client
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) {
	cr, ok := mg.(*v1alpha1.ResourceRecordSet)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	params, err := e.resolveParams(ctx, cr)
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errZone)
	}

	rrset, err := resourcerecordset.GetResourceRecordSet(ctx, meta.GetExternalName(cr), params, e.client)
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(resourcerecordset.IsNotFound, err), errList)
	}

	current := cr.Spec.ForProvider.DeepCopy()
	resourcerecordset.LateInitialize(&cr.Spec.ForProvider, rrset)

	cr.Status.SetConditions(xpv1.Available())

	upToDate, err := resourcerecordset.IsUpToDate(params, *rrset)
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errState)
	}

	return managed.ExternalObservation{
		ResourceExists:          true,
		ResourceUpToDate:        upToDate,
		ResourceLateInitialized: !cmp.Equal(current, &cr.Spec.ForProvider),
	}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1alpha1.ResourceRecordSet)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Creating())

	params, err := e.resolveParams(ctx, cr)
	if err != nil {
		return managed.ExternalCreation{}, errorutils.Wrap(err, errZone)
	}

	// An upsert makes the create idempotent when the record already exists,
	// for example when it survived a previous instance of its managed
	// resource.
	input := resourcerecordset.GenerateChangeResourceRecordSetsInput(meta.GetExternalName(cr), params, route53types.ChangeActionUpsert)
	_, err = e.client.ChangeResourceRecordSets(ctx, input)

	return managed.ExternalCreation{}, errorutils.Wrap(err, errCreate)
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) {
	cr, ok := mg.(*v1alpha1.ResourceRecordSet)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	params, err := e.resolveParams(ctx, cr)
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errZone)
	}

	input := resourcerecordset.GenerateChangeResourceRecordSetsInput(meta.GetExternalName(cr), params, route53types.ChangeActionUpsert)
	_, err = e.client.ChangeResourceRecordSets(ctx, input)

	return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
}

func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1alpha1.ResourceRecordSet)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Deleting())

	params, err := e.resolveParams(ctx, cr)
	if err != nil {
		if hostedzone.IsNotFound(err) {
			// The zone is gone and took its records with it.
			return nil
		}
		return errorutils.Wrap(err, errZone)
	}

	input := resourcerecordset.GenerateChangeResourceRecordSetsInput(meta.GetExternalName(cr), params, route53types.ChangeActionDelete)
	_, err = e.client.ChangeResourceRecordSets(ctx, input)

	// Route53 reports the deletion of an absent record as an invalid change
	// batch.
	return errorutils.Wrap(resource.Ignore(isRecordGone, err), errDelete)
}

// resolveParams returns the spec parameters with the zone ID filled in,
// looking the zone up by name when only a zone name is given.
func (e *external) resolveParams(ctx context.Context, cr *v1alpha1.ResourceRecordSet) (v1alpha1.ResourceRecordSetParameters, error) {
	params := *cr.Spec.ForProvider.DeepCopy()
	switch {
	case aws.ToString(params.ZoneID) != "":
		return params, nil
	case aws.ToString(params.ZoneName) != "":
		id, err := hostedzone.LookupZoneID(ctx, e.zone, *params.ZoneName)
		if err != nil {
			return params, err
		}
		params.ZoneID = &id
		return params, nil
	default:
		return params, errors.New(errNoZone)
	}
}

func isRecordGone(err error) bool {
	if resourcerecordset.IsNotFound(err) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidChangeBatch"
}
