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

package v1alpha1

import (
	"context"

	"github.com/crossplane/crossplane-runtime/pkg/reference"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cloudfrontv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
)

// ResolveReferences of this ResourceRecordSet
func (mg *ResourceRecordSet) ResolveReferences(ctx context.Context, c client.Reader) error {
	r := reference.NewAPIResolver(c, mg)

	// Resolve spec.forProvider.zoneId
	rsp, err := r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: reference.FromPtrValue(mg.Spec.ForProvider.ZoneID),
		Reference:    mg.Spec.ForProvider.ZoneIDRef,
		Selector:     mg.Spec.ForProvider.ZoneIDSelector,
		To:           reference.To{Managed: &HostedZone{}, List: &HostedZoneList{}},
		Extract:      reference.ExternalName(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.zoneId")
	}
	mg.Spec.ForProvider.ZoneID = reference.ToPtrValue(rsp.ResolvedValue)
	mg.Spec.ForProvider.ZoneIDRef = rsp.ResolvedReference

	if mg.Spec.ForProvider.AliasTarget == nil {
		return nil
	}

	// Resolve spec.forProvider.aliasTarget.dnsName
	rsp, err = r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: mg.Spec.ForProvider.AliasTarget.DNSName,
		Reference:    mg.Spec.ForProvider.AliasTarget.DNSNameRef,
		Selector:     mg.Spec.ForProvider.AliasTarget.DNSNameSelector,
		To:           reference.To{Managed: &cloudfrontv1alpha1.Distribution{}, List: &cloudfrontv1alpha1.DistributionList{}},
		Extract:      cloudfrontv1alpha1.DistributionDomainName(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.aliasTarget.dnsName")
	}
	mg.Spec.ForProvider.AliasTarget.DNSName = rsp.ResolvedValue
	mg.Spec.ForProvider.AliasTarget.DNSNameRef = rsp.ResolvedReference

	// Resolve spec.forProvider.aliasTarget.hostedZoneId
	rsp, err = r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: mg.Spec.ForProvider.AliasTarget.HostedZoneID,
		Reference:    mg.Spec.ForProvider.AliasTarget.HostedZoneIDRef,
		Selector:     mg.Spec.ForProvider.AliasTarget.HostedZoneIDSelector,
		To:           reference.To{Managed: &cloudfrontv1alpha1.Distribution{}, List: &cloudfrontv1alpha1.DistributionList{}},
		Extract:      cloudfrontv1alpha1.DistributionHostedZoneID(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.aliasTarget.hostedZoneId")
	}
	mg.Spec.ForProvider.AliasTarget.HostedZoneID = rsp.ResolvedValue
	mg.Spec.ForProvider.AliasTarget.HostedZoneIDRef = rsp.ResolvedReference

	return nil
}
