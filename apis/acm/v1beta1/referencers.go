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

package v1beta1

import (
	"context"

	"github.com/crossplane/crossplane-runtime/pkg/reference"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// CertificateARN returns a function that returns the ARN of the given Certificate.
func CertificateARN() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*Certificate)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.CertificateARN
	}
}

// IssuedCertificateARN returns a function that returns the certificate ARN
// tracked by the given CertificateValidation, but only once the certificate
// has been issued. Until then the extracted value is empty, which blocks
// resolution of resources that must not progress before issuance.
func IssuedCertificateARN() reference.ExtractValueFn {
	return func(mg resource.Managed) string {
		r, ok := mg.(*CertificateValidation)
		if !ok {
			return ""
		}
		return r.Status.AtProvider.IssuedCertificateARN
	}
}

// ResolveReferences of this CertificateValidation
func (mg *CertificateValidation) ResolveReferences(ctx context.Context, c client.Reader) error {
	r := reference.NewAPIResolver(c, mg)

	// Resolve spec.forProvider.certificateARN
	rsp, err := r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: reference.FromPtrValue(mg.Spec.ForProvider.CertificateARN),
		Reference:    mg.Spec.ForProvider.CertificateARNRef,
		Selector:     mg.Spec.ForProvider.CertificateARNSelector,
		To:           reference.To{Managed: &Certificate{}, List: &CertificateList{}},
		Extract:      CertificateARN(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.certificateARN")
	}
	mg.Spec.ForProvider.CertificateARN = reference.ToPtrValue(rsp.ResolvedValue)
	mg.Spec.ForProvider.CertificateARNRef = rsp.ResolvedReference

	return nil
}
