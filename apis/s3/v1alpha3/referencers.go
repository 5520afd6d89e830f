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

package v1alpha3

import (
	"context"
	"fmt"

	"github.com/crossplane/crossplane-runtime/pkg/reference"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cloudfrontv1alpha1 "github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/apis/s3/common"
	"github.com/crossplane-contrib/provider-aws-website/apis/s3/v1beta1"
)

// ResolveReferences of this BucketPolicy
func (mg *BucketPolicy) ResolveReferences(ctx context.Context, c client.Reader) error {
	r := reference.NewAPIResolver(c, mg)
	// Resolve spec.forProvider.bucketName
	rsp, err := r.Resolve(ctx, reference.ResolutionRequest{
		CurrentValue: reference.FromPtrValue(mg.Spec.Parameters.BucketName),
		Reference:    mg.Spec.Parameters.BucketNameRef,
		Selector:     mg.Spec.Parameters.BucketNameSelector,
		To:           reference.To{Managed: &v1beta1.Bucket{}, List: &v1beta1.BucketList{}},
		Extract:      reference.ExternalName(),
	})
	if err != nil {
		return errors.Wrap(err, "spec.forProvider.bucketName")
	}
	mg.Spec.Parameters.BucketName = reference.ToPtrValue(rsp.ResolvedValue)
	mg.Spec.Parameters.BucketNameRef = rsp.ResolvedReference

	// Resolve the condition values referencing a Distribution, such as the
	// AWS:SourceArn condition of an origin access policy. Resolution fails
	// until the distribution reports an ARN, which keeps a policy naming a
	// not-yet-created distribution unapplied.
	if mg.Spec.Parameters.Policy != nil && mg.Spec.Parameters.Policy.Statements != nil {
		for i := range mg.Spec.Parameters.Policy.Statements {
			if err := ResolveConditions(ctx, r, mg.Spec.Parameters.Policy.Statements[i].Condition, i); err != nil {
				return err
			}
		}
	}

	return nil
}

// ResolveConditions resolves all the Distribution references in the condition
// set of a policy statement
func ResolveConditions(ctx context.Context, r *reference.APIResolver, conditions []common.Condition, statementIndex int) error {
	for i := range conditions {
		for j := range conditions[i].Conditions {
			pair := &conditions[i].Conditions[j]
			if pair.ConditionStringValueRef == nil && pair.ConditionStringValueSelector == nil {
				continue
			}
			rsp, err := r.Resolve(ctx, reference.ResolutionRequest{
				CurrentValue: reference.FromPtrValue(pair.ConditionStringValue),
				Reference:    pair.ConditionStringValueRef,
				Selector:     pair.ConditionStringValueSelector,
				To:           reference.To{Managed: &cloudfrontv1alpha1.Distribution{}, List: &cloudfrontv1alpha1.DistributionList{}},
				Extract:      cloudfrontv1alpha1.DistributionARN(),
			})
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("spec.forProvider.statement[%d].condition[%d].conditions[%d].stringValue", statementIndex, i, j))
			}
			pair.ConditionStringValue = reference.ToPtrValue(rsp.ResolvedValue)
			pair.ConditionStringValueRef = rsp.ResolvedReference
		}
	}
	return nil
}
