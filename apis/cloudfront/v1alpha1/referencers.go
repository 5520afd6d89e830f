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

package v1alpha1

import (
	"context"

	"github.com/crossplane/crossplane-runtime/pkg/reference"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	acmv1beta1 "github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
	s3v1beta1 "github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
)

// DistributionARN returns a function that returns the ARN of the given
// Distribution.
func DistributionARN() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*Distribution)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.ARN
	}
}

// DistributionDomainName returns a function that returns the CloudFront
// domain name of the given Distribution.
func DistributionDomainName() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*Distribution)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.DomainName
	}
}

// DistributionHostedZoneID returns a function that returns the hosted zone
// alias records targeting the given Distribution must use.
func DistributionHostedZoneID() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*Distribution)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.HostedZoneID
	}
}

// OriginAccessControlID returns a function that returns the ID of the given
// OriginAccessControl.
func OriginAccessControlID() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*OriginAccessControl)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.ID
	}
}

// ResolveReferences of this Distribution
func (mg *Distribution) ResolveReferences(ctx context.Context, c client.Reader) error {
	r := reference.NewAPIResolver(c, mg)

	// Resolve spec.forProvider.origin.domainName
	rsp, err := r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: reference.FromPtrValue(mg.Spec.ForProvider.Origin.DomainName),
		Reference:    mg.Spec.ForProvider.Origin.DomainNameRef,
		Selector:     mg.Spec.ForProvider.Origin.DomainNameSelector,
		To:           reference.To{Managed: &s3v1beta1.Bucket{}, List: &s3v1beta1.BucketList{}},
		Extract:      s3v1beta1.BucketRegionalDomainName(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.origin.domainName")
	}
	mg.Spec.ForProvider.Origin.DomainName = reference.ToPtrValue(rsp.ResolvedValue)
	mg.Spec.ForProvider.Origin.DomainNameRef = rsp.ResolvedReference

	// Resolve spec.forProvider.origin.originAccessControlId
	rsp, err = r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: reference.FromPtrValue(mg.Spec.ForProvider.Origin.OriginAccessControlID),
		Reference:    mg.Spec.ForProvider.Origin.OriginAccessControlIDRef,
		Selector:     mg.Spec.ForProvider.Origin.OriginAccessControlIDSelector,
		To:           reference.To{Managed: &OriginAccessControl{}, List: &OriginAccessControlList{}},
		Extract:      OriginAccessControlID(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.origin.originAccessControlId")
	}
	mg.Spec.ForProvider.Origin.OriginAccessControlID = reference.ToPtrValue(rsp.ResolvedValue)
	mg.Spec.ForProvider.Origin.OriginAccessControlIDRef = rsp.ResolvedReference

	// Resolve spec.forProvider.viewerCertificate.acmCertificateARN
	if mg.Spec.ForProvider.ViewerCertificate != nil {
		rsp, err = r.Resolve(ctx, reference.ResolutionRequest{
			CurrentValue: reference.FromPtrValue(mg.Spec.ForProvider.ViewerCertificate.ACMCertificateARN),
			Reference:    mg.Spec.ForProvider.ViewerCertificate.ACMCertificateARNRef,
			Selector:     mg.Spec.ForProvider.ViewerCertificate.ACMCertificateARNSelector,
			To:           reference.To{Managed: &acmv1beta1.CertificateValidation{}, List: &acmv1beta1.CertificateValidationList{}},
			Extract:      acmv1beta1.IssuedCertificateARN(),
		})
		if err != nil {
			return errors.Wrap(err, "spec.forProvider.viewerCertificate.acmCertificateARN")
		}
		mg.Spec.ForProvider.ViewerCertificate.ACMCertificateARN = reference.ToPtrValue(rsp.ResolvedValue)
		mg.Spec.ForProvider.ViewerCertificate.ACMCertificateARNRef = rsp.ResolvedReference
	}

	return nil
}
