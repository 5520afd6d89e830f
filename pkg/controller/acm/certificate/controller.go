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
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsacm "github.com/aws/aws-sdk-go-v2/service/acm"
	acmtypes "github.com/aws/aws-sdk-go-v2/service/acm/types"
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

	"github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
	"github.com/crossplane-contrib/provider-aws-website/apis/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/clients/acm"
	"github.com/crossplane-contrib/provider-aws-website/pkg/controller/common"
	"github.com/crossplane-contrib/provider-aws-website/pkg/features"
	connectaws "github.com/crossplane-contrib/provider-aws-website/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-website/pkg/utils/errors"
	custommanaged "github.com/crossplane-contrib/provider-aws-website/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "The managed resource is not a Certificate resource"
	errGet              = "failed to get Certificate with arn"
	errCreate           = "failed to create the Certificate resource"
	errDelete           = "failed to delete the Certificate resource"
	errUpdate           = "failed to update the Certificate resource"
	errListTags         = "failed to list tags for the Certificate resource"
	errAddTags          = "failed to add tags for the Certificate resource"
	errRemoveTags       = "failed to remove tags for the Certificate resource"
	errKubeUpdateFailed = "cannot update Certificate custom resource"
)

// SetupCertificate adds a controller that reconciles Certificates.
func SetupCertificate(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1beta1.CertificateGroupKind)

	cps := []managed.ConnectionPublisher{managed.NewAPISecretPublisher(mgr.GetClient(), mgr.GetScheme())}
	if o.Features.Enabled(features.EnableAlphaExternalSecretStores) {
		cps = append(cps, connection.NewDetailsManager(mgr.GetClient(), v1alpha1.StoreConfigGroupVersionKind))
	}

	reconcilerOpts := []managed.ReconcilerOption{
		managed.WithCriticalAnnotationUpdater(custommanaged.NewRetryingCriticalAnnotationUpdater(mgr.GetClient())),
		managed.WithExternalConnecter(&connector{kube: mgr.GetClient(), newClientFn: acm.NewClient}),
		managed.WithInitializers(common.NewTagger(mgr.GetClient(), &v1beta1.Certificate{})),
		managed.WithPollInterval(o.PollInterval),
		managed.WithLogger(o.Logger.WithValues("controller", name)),
		managed.WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(name))),
		managed.WithConnectionPublishers(cps...),
	}

	if o.Features.Enabled(features.EnableAlphaManagementPolicies) {
		reconcilerOpts = append(reconcilerOpts, managed.WithManagementPolicies())
	}

	r := managed.NewReconciler(mgr,
		resource.ManagedKind(v1beta1.CertificateGroupVersionKind),
		reconcilerOpts...)

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1beta1.Certificate{}).
		Complete(r)
}

type connector struct {
	kube        client.Client
	newClientFn func(config aws.Config) acm.Client
}

func (c *connector) Connect(ctx context.Context, mg resource.Managed) (managed.ExternalClient, error) {
	cr, ok := mg.(*v1beta1.Certificate)
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
	client acm.Client
}

func (e *external) Observe(ctx context.Context, mg resource.Managed) (managed.ExternalObservation, error) { //nolint:gocyclo
	cr, ok := mg.(*v1beta1.Certificate)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	if meta.GetExternalName(cr) == "" {
		return managed.ExternalObservation{}, nil
	}

	response, err := e.client.DescribeCertificate(ctx, &awsacm.DescribeCertificateInput{
		CertificateArn: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(resource.Ignore(acm.IsErrorNotFound, err), errGet)
	}
	certificate := response.Certificate

	current := cr.Spec.ForProvider.DeepCopy()
	acm.LateInitializeCertificate(&cr.Spec.ForProvider, certificate)

	// The replacement tracking survives status regeneration; it belongs to
	// the controller, not to the describe output.
	replacement := cr.Status.AtProvider.ReplacementCertificateARN
	cr.Status.AtProvider = acm.GenerateCertificateStatus(*certificate)
	cr.Status.AtProvider.ReplacementCertificateARN = replacement

	switch acmtypes.CertificateStatus(cr.Status.AtProvider.Status) {
	case acmtypes.CertificateStatusIssued:
		cr.Status.SetConditions(xpv1.Available())
	case acmtypes.CertificateStatusPendingValidation:
		cr.Status.SetConditions(xpv1.Creating())
	default:
		cr.Status.SetConditions(xpv1.Unavailable().WithMessage(cr.Status.AtProvider.Status))
	}

	if acm.RequiresReplacement(cr.Spec.ForProvider, *certificate) || replacement != "" {
		return managed.ExternalObservation{
			ResourceExists:          true,
			ResourceUpToDate:        false,
			ResourceLateInitialized: !cmp.Equal(current, &cr.Spec.ForProvider),
		}, nil
	}

	tags, err := e.client.ListTagsForCertificate(ctx, &awsacm.ListTagsForCertificateInput{
		CertificateArn: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalObservation{}, errorutils.Wrap(err, errListTags)
	}

	return managed.ExternalObservation{
		ResourceExists:          true,
		ResourceUpToDate:        acm.IsCertificateUpToDate(cr.Spec.ForProvider, *certificate, tags.Tags),
		ResourceLateInitialized: !cmp.Equal(current, &cr.Spec.ForProvider),
	}, nil
}

func (e *external) Create(ctx context.Context, mg resource.Managed) (managed.ExternalCreation, error) {
	cr, ok := mg.(*v1beta1.Certificate)
	if !ok {
		return managed.ExternalCreation{}, errors.New(errUnexpectedObject)
	}

	input := acm.GenerateCreateCertificateInput(cr.Spec.ForProvider)
	input.IdempotencyToken = aws.String(idempotencyToken(cr))
	response, err := e.client.RequestCertificate(ctx, input)
	if err != nil {
		return managed.ExternalCreation{}, errorutils.Wrap(err, errCreate)
	}

	meta.SetExternalName(cr, aws.ToString(response.CertificateArn))
	return managed.ExternalCreation{}, nil
}

func (e *external) Update(ctx context.Context, mg resource.Managed) (managed.ExternalUpdate, error) { //nolint:gocyclo
	cr, ok := mg.(*v1beta1.Certificate)
	if !ok {
		return managed.ExternalUpdate{}, errors.New(errUnexpectedObject)
	}

	response, err := e.client.DescribeCertificate(ctx, &awsacm.DescribeCertificateInput{
		CertificateArn: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errGet)
	}

	if acm.RequiresReplacement(cr.Spec.ForProvider, *response.Certificate) || cr.Status.AtProvider.ReplacementCertificateARN != "" {
		return e.replace(ctx, cr)
	}

	if cr.Spec.ForProvider.Options != nil {
		_, err := e.client.UpdateCertificateOptions(ctx, &awsacm.UpdateCertificateOptionsInput{
			CertificateArn: aws.String(meta.GetExternalName(cr)),
			Options: &acmtypes.CertificateOptions{
				CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreference(cr.Spec.ForProvider.Options.CertificateTransparencyLoggingPreference),
			},
		})
		if err != nil {
			return managed.ExternalUpdate{}, errorutils.Wrap(err, errUpdate)
		}
	}

	tags, err := e.client.ListTagsForCertificate(ctx, &awsacm.ListTagsForCertificateInput{
		CertificateArn: aws.String(meta.GetExternalName(cr)),
	})
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errListTags)
	}
	add, remove := acm.DiffTags(cr.Spec.ForProvider.Tags, tags.Tags)
	if len(remove) != 0 {
		if _, err := e.client.RemoveTagsFromCertificate(ctx, &awsacm.RemoveTagsFromCertificateInput{
			CertificateArn: aws.String(meta.GetExternalName(cr)),
			Tags:           remove,
		}); err != nil {
			return managed.ExternalUpdate{}, errorutils.Wrap(err, errRemoveTags)
		}
	}
	if len(add) != 0 {
		if _, err := e.client.AddTagsToCertificate(ctx, &awsacm.AddTagsToCertificateInput{
			CertificateArn: aws.String(meta.GetExternalName(cr)),
			Tags:           add,
		}); err != nil {
			return managed.ExternalUpdate{}, errorutils.Wrap(err, errAddTags)
		}
	}
	return managed.ExternalUpdate{}, nil
}

// replace performs the create-before-destroy exchange of an immutable
// certificate. A fresh certificate is requested first; the current one keeps
// serving until the replacement reaches ISSUED, only then does the external
// name move over and the predecessor get deleted.
func (e *external) replace(ctx context.Context, cr *v1beta1.Certificate) (managed.ExternalUpdate, error) {
	if cr.Status.AtProvider.ReplacementCertificateARN == "" {
		input := acm.GenerateCreateCertificateInput(cr.Spec.ForProvider)
		input.IdempotencyToken = aws.String(replacementToken(cr))
		response, err := e.client.RequestCertificate(ctx, input)
		if err != nil {
			return managed.ExternalUpdate{}, errorutils.Wrap(err, errCreate)
		}
		cr.Status.AtProvider.ReplacementCertificateARN = aws.ToString(response.CertificateArn)
		return managed.ExternalUpdate{}, nil
	}

	response, err := e.client.DescribeCertificate(ctx, &awsacm.DescribeCertificateInput{
		CertificateArn: aws.String(cr.Status.AtProvider.ReplacementCertificateARN),
	})
	if err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errGet)
	}
	if response.Certificate.Status != acmtypes.CertificateStatusIssued {
		return managed.ExternalUpdate{}, nil
	}

	predecessor := meta.GetExternalName(cr)
	meta.SetExternalName(cr, cr.Status.AtProvider.ReplacementCertificateARN)
	if err := e.kube.Update(ctx, cr); err != nil {
		return managed.ExternalUpdate{}, errorutils.Wrap(err, errKubeUpdateFailed)
	}
	cr.Status.AtProvider.ReplacementCertificateARN = ""

	_, err = e.client.DeleteCertificate(ctx, &awsacm.DeleteCertificateInput{
		CertificateArn: aws.String(predecessor),
	})
	return managed.ExternalUpdate{}, errorutils.Wrap(resource.Ignore(acm.IsErrorNotFound, err), errDelete)
}

func (e *external) Delete(ctx context.Context, mg resource.Managed) error {
	cr, ok := mg.(*v1beta1.Certificate)
	if !ok {
		return errors.New(errUnexpectedObject)
	}

	cr.Status.SetConditions(xpv1.Deleting())

	if arn := cr.Status.AtProvider.ReplacementCertificateARN; arn != "" && arn != meta.GetExternalName(cr) {
		_, err := e.client.DeleteCertificate(ctx, &awsacm.DeleteCertificateInput{
			CertificateArn: aws.String(arn),
		})
		if resource.Ignore(acm.IsErrorNotFound, err) != nil {
			return errorutils.Wrap(err, errDelete)
		}
	}

	_, err := e.client.DeleteCertificate(ctx, &awsacm.DeleteCertificateInput{
		CertificateArn: aws.String(meta.GetExternalName(cr)),
	})
	return errorutils.Wrap(resource.Ignore(acm.IsErrorNotFound, err), errDelete)
}

// idempotencyToken derives an ACM idempotency token from the object UID.
// The token alphabet excludes dashes.
func idempotencyToken(cr *v1beta1.Certificate) string {
	return strings.ReplaceAll(string(cr.UID), "-", "")
}

// replacementToken must differ from the create token, otherwise ACM would
// hand the original certificate back instead of issuing a new one.
func replacementToken(cr *v1beta1.Certificate) string {
	token := idempotencyToken(cr)
	if len(token) > 25 {
		token = token[:25]
	}
	return token + "replace"
}
