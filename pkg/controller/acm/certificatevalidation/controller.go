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

package certificatevalidation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsacm "github.com/aws/aws-sdk-go-v2/service/acm"
	acmtypes "github.com/aws/aws-sdk-go-v2/service/acm/types"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/connection"
	"github.com/crossplane/crossplane-runtime/pkg/controller"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/reconciler/managed"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
	route53v1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/route53/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/acm"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/hostedzone"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/resourcerecordset"
	"github.com/crossplane-contrib/provider-aws-website/pkg/features"
	connectaws "github.com/crossplane-contrib/provider-aws-website/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject     = "The managed resource is not a CertificateValidation resource"
	errGet                  = "failed to get Certificate with arn"
	errNoCertificate        = "no certificate ARN is set"
	errNoZone               = "neither zoneId nor zoneName is set"
	errZoneLookup           = "failed to look up the hosted zone for the validation record"
	errRecordGet            = "failed to get the validation record"
	errRecordPublish        = "failed to publish the validation record"
	errRecordDelete         = "failed to delete the validation record"
	errValidationFailedFmt  = "certificate validation failed with status %s"
	errMissingRecordDetails = "certificate reports no validation record yet"
)

// validationRecordTTL is the TTL of the published validation CNAME. The
// record only proves domain control, resolvers never cache it for long.
const validationRecordTTL int64 = 300

// SetupCertificateValidation adds a controller that reconciles
// CertificateValidations.
func SetupCertificateValidation(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1beta1.CertificateValidationGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), v1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{
			kube:               mgr.GetClient(),
			newACMClientFn:     acm.NewClient,
			newRoute53ClientFn: resourcerecordset.NewClient,
			newZoneClientFn:    hostedzone.NewClient,
		}),
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
		resource.ManagedKind(v1beta1.CertificateValidationGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1beta1.CertificateValidation{}).
		Complete(r)
}

type connector struct {
	kube               client.Client
	newACMClientFn     func(config aws.Config) acm.Client
	newRoute53ClientFn func(config aws.Config) resourcerecordset.Client
	newZoneClientFn    func(config aws.Config) hostedzone.Client
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cr, ok := mg.(*v1beta1.CertificateValidation)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := connectaws.GetConfig(ctx, c.kube, mg, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return &external{
		acm:     c.newACMClientFn(*cfg),
		route53: c.newRoute53ClientFn(*cfg),
		zone:    c.newZoneClientFn(*cfg),
		kube:    c.kube,
	}, nil
}

type external struct {
	kube    client.Client
	acm     acm.Client
	route53 resourcerecordset.Client
	zone    hostedzone.Client
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) { //nolint:gocyclo
	cr, ok := mg.(*v1beta1.CertificateValidation)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	arn := pointer.StringValue(cr.Spec.ForProvider.CertificateARN)
	if arn == "" || meta.GetExternalName(cr) == "" {
		return managed.ExternalObservation{}, nil
	}

	response, err := e.acm.DescribeCertificate(ctx, &awsacm.DescribeCertificateInput{
		CertificateArn: aws.String(arn),
	})
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(acm.IsErrorNotFound, err), errGet)
	}
	certificate := acm.GenerateCertificateStatus(*response.Certificate)

	cr.Status.AtProvider.Status = certificate.Status
	cr.Status.AtProvider.ResourceRecord = certificate.ResourceRecord

	if certificate.ResourceRecord == nil {
		// ACM publishes the DNS challenge asynchronously after the request.
		// There is nothing to reconcile until it appears.
		cr.Status.SetConditions(xpv1.Creating())
		return managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: true}, nil
	}

	zoneID, err := e.zoneID(ctx, cr)
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errZoneLookup)
	}
	cr.Status.AtProvider.ZoneID = zoneID

	published, err := resourcerecordset.GetResourceRecordSet(ctx,
		aws.ToString(certificate.ResourceRecord.Name),
		recordParameters(zoneID, certificate.ResourceRecord), e.route53)
	if resourcerecordset.IsNotFound(err) {
		cr.Status.SetConditions(xpv1.Creating())
		return managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: false}, nil
	}
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errRecordGet)
	}
	// A renewal re-challenge keeps the record name and changes the value;
	// the record then needs to be upserted in place.
	if !recordMatches(published, certificate.ResourceRecord) {
		return managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: false}, nil
	}

	switch acmtypes.CertificateStatus(certificate.Status) {
	case acmtypes.CertificateStatusIssued:
		cr.Status.AtProvider.IssuedCertificateARN = arn
		cr.Status.SetConditions(xpv1.Available())
	case acmtypes.CertificateStatusPendingValidation:
		cr.Status.SetConditions(xpv1.Creating())
	case acmtypes.CertificateStatusFailed, acmtypes.CertificateStatusValidationTimedOut:
		cr.Status.SetConditions(xpv1.Unavailable().WithMessage(certificate.Status))
		return managed.ExternalObservation{}, errors.Errorf(errValidationFailedFmt, certificate.Status)
	default:
		cr.Status.SetConditions(xpv1.Unavailable().WithMessage(certificate.Status))
	}

	return managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: true}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1beta1.CertificateValidation)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	arn := pointer.StringValue(cr.Spec.ForProvider.CertificateARN)
	if arn == "" {
		return managed.ExternalCreation{}, errors.New(errNoCertificate)
	}

	meta.SetExternalName(cr, arn)

	err := e.publish(ctx, cr, arn)
	if errors.Is(err, errWaitingForChallenge) {
		// The challenge is not out yet. The external name is set, so the
		// next observation keeps polling until ACM publishes it.
		return managed.ExternalCreation{}, nil
	}
	return managed.ExternalCreation{}, err
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) {
	cr, ok := mg.(*v1beta1.CertificateValidation)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	err := e.publish(ctx, cr, meta.GetExternalName(cr))
	if errors.Is(err, errWaitingForChallenge) {
		return managed.ExternalUpdate{}, nil
	}
	return managed.ExternalUpdate{}, err
}

func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1beta1.CertificateValidation)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Deleting())

	record := cr.Status.AtProvider.ResourceRecord
	zoneID := cr.Status.AtProvider.ZoneID
	if record == nil || zoneID == "" {
		// The record was never published, or the certificate disappeared
		// before its challenge was observed.
		return nil
	}

	_, err := e.route53.ChangeResourceRecordSets(ctx,
		resourcerecordset.GenerateChangeResourceRecordSetsInput(
			aws.ToString(record.Name),
			recordParameters(zoneID, record),
			route53types.ChangeActionDelete))
	return errorutils.Wrap(resource.Ignore(isRecordGone, err), errRecordDelete)
}

// errWaitingForChallenge signals that ACM has not published the DNS
// challenge yet.
var errWaitingForChallenge = errors.New(errMissingRecordDetails)

// publish upserts the certificate's validation CNAME into the zone.
// Upserting keeps re-publication idempotent: a renewal with a fresh
// challenge value overwrites the record instead of duplicating it.
func (e *external) publish(ctx context.Context, cr *v1beta1.CertificateValidation, arn string) error {
	response, err := e.acm.DescribeCertificate(ctx, &awsacm.DescribeCertificateInput{
		CertificateArn: aws.String(arn),
	})
	if err != nil {
		return errorutils.Wrap(err, errGet)
	}
	certificate := acm.GenerateCertificateStatus(*response.Certificate)
	if certificate.ResourceRecord == nil {
		return errWaitingForChallenge
	}

	zoneID, err := e.zoneID(ctx, cr)
	if err != nil {
		return errorutils.Wrap(err, errZoneLookup)
	}
	cr.Status.AtProvider.ZoneID = zoneID
	cr.Status.AtProvider.ResourceRecord = certificate.ResourceRecord

	_, err = e.route53.ChangeResourceRecordSets(ctx,
		resourcerecordset.GenerateChangeResourceRecordSetsInput(
			aws.ToString(certificate.ResourceRecord.Name),
			recordParameters(zoneID, certificate.ResourceRecord),
			route53types.ChangeActionUpsert))
	return errorutils.Wrap(err, errRecordPublish)
}

// zoneID resolves the hosted zone the validation record belongs to, either
// directly or by an exactly-one lookup of the zone name.
func (e *external) zoneID(ctx context.Context, cr *v1beta1.CertificateValidation) (string, error) {
	switch {
	case pointer.StringValue(cr.Spec.ForProvider.ZoneID) != "":
		return *cr.Spec.ForProvider.ZoneID, nil
	case pointer.StringValue(cr.Spec.ForProvider.ZoneName) != "":
		return hostedzone.LookupZoneID(ctx, e.zone, *cr.Spec.ForProvider.ZoneName)
	default:
		return "", errors.New(errNoZone)
	}
}

func recordParameters(zoneID string, record *v1beta1.ResourceRecord) route53v1alpha1.ResourceRecordSetParameters {
	ttl := validationRecordTTL
	return route53v1alpha1.ResourceRecordSetParameters{
		ZoneID: &zoneID,
		Type:   aws.ToString(record.Type),
		TTL:    &ttl,
		ResourceRecords: []route53v1alpha1.ResourceRecord{
			{Value: aws.ToString(record.Value)},
		},
	}
}

func recordMatches(published *route53types.ResourceRecordSet, record *v1beta1.ResourceRecord) bool {
	if published == nil || len(published.ResourceRecords) != 1 {
		return false
	}
	return aws.ToString(published.ResourceRecords[0].Value) == aws.ToString(record.Value)
}

// isRecordGone tolerates deletions of records that do not exist anymore.
// Route53 reports those as InvalidChangeBatch.
func isRecordGone(err error) bool {
	if resourcerecordset.IsNotFound(err) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidChangeBatch"
}
