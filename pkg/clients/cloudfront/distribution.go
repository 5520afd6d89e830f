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

package cloudfront

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cloudfronttypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/crossplane-contrib/provider-aws-website/apis/cloudfront/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/pointer"
)

const (
	// CloudFrontHostedZoneID is the Route53 hosted zone ID of CloudFront
	// itself. Alias records targeting any distribution must use it.
	CloudFrontHostedZoneID = "Z2FDTNDATAQYW2"

	// CachingOptimizedPolicyID is the ID of the CachingOptimized managed
	// cache policy. It is the same in every account and applies whenever no
	// cache policy is configured.
	CachingOptimizedPolicyID = "658327ea-f89d-4fab-a63d-7e88639e58f6"
)

// DistributionClient defines the CloudFront operations a Distribution needs.
type DistributionClient interface {
	CreateDistribution(ctx context.Context, input *cloudfront.CreateDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error)
	GetDistribution(ctx context.Context, input *cloudfront.GetDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetDistributionOutput, error)
	GetDistributionConfig(ctx context.Context, input *cloudfront.GetDistributionConfigInput, opts ...func(*cloudfront.Options)) (*cloudfront.GetDistributionConfigOutput, error)
	UpdateDistribution(ctx context.Context, input *cloudfront.UpdateDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.UpdateDistributionOutput, error)
	DeleteDistribution(ctx context.Context, input *cloudfront.DeleteDistributionInput, opts ...func(*cloudfront.Options)) (*cloudfront.DeleteDistributionOutput, error)
}

// NewDistributionClient creates new CloudFront DistributionClient with provided AWS Configurations/Credentials
func NewDistributionClient(cfg aws.Config) DistributionClient {
	return cloudfront.NewFromConfig(cfg)
}

// IsErrorDistributionNotFound returns true if the error indicates that the
// distribution does not exist
func IsErrorDistributionNotFound(err error) bool {
	var nsd *cloudfronttypes.NoSuchDistribution
	return errors.As(err, &nsd)
}

// GenerateDistributionConfig builds the full distribution config CloudFront
// expects from the given parameters. The caller reference is immutable, so
// callers pass the object UID on create and the observed reference afterwards.
func GenerateDistributionConfig(p v1alpha1.DistributionParameters, callerReference string) *cloudfronttypes.DistributionConfig {
	conf := &cloudfronttypes.DistributionConfig{
		CallerReference:      aws.String(callerReference),
		Comment:              aws.String(pointer.StringValue(p.Comment)),
		Enabled:              aws.Bool(pointer.BoolValue(p.Enabled)),
		IsIPV6Enabled:        aws.Bool(pointer.BoolValue(p.IsIPV6Enabled)),
		DefaultRootObject:    aws.String(pointer.StringValue(p.DefaultRootObject)),
		Aliases:              generateAliases(p.Aliases),
		Origins:              generateOrigins(p.Origin),
		DefaultCacheBehavior: generateDefaultCacheBehavior(p.DefaultCacheBehavior, originID(p.Origin)),
		ViewerCertificate:    generateViewerCertificate(p.ViewerCertificate),
		Restrictions:         generateRestrictions(p.Restrictions),
	}
	if p.PriceClass != nil {
		conf.PriceClass = cloudfronttypes.PriceClass(*p.PriceClass)
	}
	return conf
}

// OverlayDistributionConfig applies the desired parameters on top of the
// distribution's current config. UpdateDistribution replaces the entire
// config, so the fields the parameters do not cover must keep their current
// values, as must the caller reference.
func OverlayDistributionConfig(conf *cloudfronttypes.DistributionConfig, p v1alpha1.DistributionParameters) {
	desired := GenerateDistributionConfig(p, aws.ToString(conf.CallerReference))
	conf.Comment = desired.Comment
	conf.Enabled = desired.Enabled
	conf.IsIPV6Enabled = desired.IsIPV6Enabled
	conf.DefaultRootObject = desired.DefaultRootObject
	conf.Aliases = desired.Aliases
	conf.ViewerCertificate = desired.ViewerCertificate
	conf.Restrictions = desired.Restrictions
	if desired.PriceClass != "" {
		conf.PriceClass = desired.PriceClass
	}
	overlayOrigins(conf, desired)
	overlayDefaultCacheBehavior(conf, desired)
}

func overlayOrigins(conf, desired *cloudfronttypes.DistributionConfig) {
	if conf.Origins == nil || len(conf.Origins.Items) != 1 {
		conf.Origins = desired.Origins
		return
	}
	current := &conf.Origins.Items[0]
	want := desired.Origins.Items[0]
	current.Id = want.Id
	current.DomainName = want.DomainName
	current.OriginPath = want.OriginPath
	current.OriginAccessControlId = want.OriginAccessControlId
	if current.S3OriginConfig == nil && current.CustomOriginConfig == nil {
		current.S3OriginConfig = want.S3OriginConfig
	}
}

func overlayDefaultCacheBehavior(conf, desired *cloudfronttypes.DistributionConfig) {
	if conf.DefaultCacheBehavior == nil {
		conf.DefaultCacheBehavior = desired.DefaultCacheBehavior
		return
	}
	current := conf.DefaultCacheBehavior
	want := desired.DefaultCacheBehavior
	current.TargetOriginId = want.TargetOriginId
	current.ViewerProtocolPolicy = want.ViewerProtocolPolicy
	current.AllowedMethods = want.AllowedMethods
	if want.Compress != nil {
		current.Compress = want.Compress
	}
	current.CachePolicyId = want.CachePolicyId
	// A cache policy and the legacy forwarded values are mutually exclusive.
	if aws.ToString(want.CachePolicyId) != "" {
		current.ForwardedValues = nil
		current.MinTTL = nil
		current.DefaultTTL = nil
		current.MaxTTL = nil
	}
}

// IsUpToDate reports whether the distribution's current config matches the
// desired parameters. Only the fields the parameters cover are compared, so
// server-side defaults CloudFront fills in on its own do not register as
// drift.
func IsUpToDate(p v1alpha1.DistributionParameters, conf *cloudfronttypes.DistributionConfig) bool {
	if conf == nil {
		return false
	}
	desired := GenerateDistributionConfig(p, aws.ToString(conf.CallerReference))
	switch {
	case aws.ToBool(desired.Enabled) != aws.ToBool(conf.Enabled),
		aws.ToString(desired.Comment) != aws.ToString(conf.Comment),
		aws.ToString(desired.DefaultRootObject) != aws.ToString(conf.DefaultRootObject),
		aws.ToBool(desired.IsIPV6Enabled) != aws.ToBool(conf.IsIPV6Enabled),
		desired.PriceClass != "" && desired.PriceClass != conf.PriceClass:
		return false
	}
	return aliasesEqual(desired.Aliases, conf.Aliases) &&
		originsEqual(desired.Origins, conf.Origins) &&
		cacheBehaviorEqual(desired.DefaultCacheBehavior, conf.DefaultCacheBehavior) &&
		viewerCertificateEqual(desired.ViewerCertificate, conf.ViewerCertificate) &&
		restrictionsEqual(desired.Restrictions, conf.Restrictions)
}

func aliasesEqual(desired, observed *cloudfronttypes.Aliases) bool {
	if observed == nil {
		return aws.ToInt32(desired.Quantity) == 0
	}
	return cmp.Equal(desired.Items, observed.Items, cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b string) bool { return a < b }))
}

func originsEqual(desired, observed *cloudfronttypes.Origins) bool {
	if observed == nil || len(observed.Items) != len(desired.Items) {
		return false
	}
	for i := range desired.Items {
		d, o := desired.Items[i], observed.Items[i]
		if aws.ToString(d.Id) != aws.ToString(o.Id) ||
			aws.ToString(d.DomainName) != aws.ToString(o.DomainName) ||
			aws.ToString(d.OriginPath) != aws.ToString(o.OriginPath) ||
			aws.ToString(d.OriginAccessControlId) != aws.ToString(o.OriginAccessControlId) {
			return false
		}
	}
	return true
}

func cacheBehaviorEqual(desired, observed *cloudfronttypes.DefaultCacheBehavior) bool {
	if observed == nil {
		return false
	}
	if aws.ToString(desired.TargetOriginId) != aws.ToString(observed.TargetOriginId) ||
		desired.ViewerProtocolPolicy != observed.ViewerProtocolPolicy ||
		aws.ToString(desired.CachePolicyId) != aws.ToString(observed.CachePolicyId) {
		return false
	}
	if desired.Compress != nil && aws.ToBool(desired.Compress) != aws.ToBool(observed.Compress) {
		return false
	}
	return methodsEqual(desired.AllowedMethods, observed.AllowedMethods)
}

func methodsEqual(desired, observed *cloudfronttypes.AllowedMethods) bool {
	if observed == nil {
		return false
	}
	var observedCached []cloudfronttypes.Method
	if observed.CachedMethods != nil {
		observedCached = observed.CachedMethods.Items
	}
	less := func(a, b cloudfronttypes.Method) bool { return a < b }
	return cmp.Equal(desired.Items, observed.Items, cmpopts.EquateEmpty(), cmpopts.SortSlices(less)) &&
		cmp.Equal(desired.CachedMethods.Items, observedCached, cmpopts.EquateEmpty(), cmpopts.SortSlices(less))
}

func viewerCertificateEqual(desired, observed *cloudfronttypes.ViewerCertificate) bool {
	if observed == nil {
		return false
	}
	if aws.ToString(desired.ACMCertificateArn) != aws.ToString(observed.ACMCertificateArn) ||
		aws.ToBool(desired.CloudFrontDefaultCertificate) != aws.ToBool(observed.CloudFrontDefaultCertificate) {
		return false
	}
	if desired.SSLSupportMethod != "" && desired.SSLSupportMethod != observed.SSLSupportMethod {
		return false
	}
	if desired.MinimumProtocolVersion != "" && desired.MinimumProtocolVersion != observed.MinimumProtocolVersion {
		return false
	}
	return true
}

func restrictionsEqual(desired, observed *cloudfronttypes.Restrictions) bool {
	if observed == nil || observed.GeoRestriction == nil {
		return desired.GeoRestriction.RestrictionType == cloudfronttypes.GeoRestrictionTypeNone
	}
	return desired.GeoRestriction.RestrictionType == observed.GeoRestriction.RestrictionType &&
		cmp.Equal(desired.GeoRestriction.Items, observed.GeoRestriction.Items, cmpopts.EquateEmpty(),
			cmpopts.SortSlices(func(a, b string) bool { return a < b }))
}

// LateInitialize fills the empty fields in *v1alpha1.DistributionParameters
// with the values CloudFront defaulted when the distribution was created.
func LateInitialize(p *v1alpha1.DistributionParameters, conf *cloudfronttypes.DistributionConfig) {
	if conf == nil {
		return
	}
	p.IsIPV6Enabled = pointer.LateInitialize(p.IsIPV6Enabled, conf.IsIPV6Enabled)
	if p.PriceClass == nil && conf.PriceClass != "" {
		p.PriceClass = pointer.ToOrNilIfZeroValue(string(conf.PriceClass))
	}
	if p.Comment == nil {
		p.Comment = pointer.ToOrNilIfZeroValue(aws.ToString(conf.Comment))
	}
	if p.DefaultRootObject == nil {
		p.DefaultRootObject = pointer.ToOrNilIfZeroValue(aws.ToString(conf.DefaultRootObject))
	}
	if conf.Origins != nil && len(conf.Origins.Items) > 0 {
		o := conf.Origins.Items[0]
		p.Origin.ID = pointer.LateInitialize(p.Origin.ID, o.Id)
		p.Origin.DomainName = pointer.LateInitialize(p.Origin.DomainName, o.DomainName)
		if p.Origin.OriginPath == nil {
			p.Origin.OriginPath = pointer.ToOrNilIfZeroValue(aws.ToString(o.OriginPath))
		}
		if p.Origin.OriginAccessControlID == nil {
			p.Origin.OriginAccessControlID = pointer.ToOrNilIfZeroValue(aws.ToString(o.OriginAccessControlId))
		}
	}
	lateInitializeCacheBehavior(p, conf.DefaultCacheBehavior)
	lateInitializeViewerCertificate(p, conf.ViewerCertificate)
	if p.Restrictions == nil && conf.Restrictions != nil && conf.Restrictions.GeoRestriction != nil {
		geo := conf.Restrictions.GeoRestriction
		restriction := v1alpha1.GeoRestriction{RestrictionType: string(geo.RestrictionType)}
		if len(geo.Items) > 0 {
			restriction.Locations = make([]string, len(geo.Items))
			copy(restriction.Locations, geo.Items)
		}
		p.Restrictions = &v1alpha1.Restrictions{GeoRestriction: restriction}
	}
}

func lateInitializeCacheBehavior(p *v1alpha1.DistributionParameters, b *cloudfronttypes.DefaultCacheBehavior) {
	if b == nil {
		return
	}
	p.DefaultCacheBehavior.CachePolicyID = pointer.LateInitialize(p.DefaultCacheBehavior.CachePolicyID, b.CachePolicyId)
	p.DefaultCacheBehavior.Compress = pointer.LateInitialize(p.DefaultCacheBehavior.Compress, b.Compress)
	if b.AllowedMethods == nil {
		return
	}
	p.DefaultCacheBehavior.AllowedMethods = pointer.LateInitializeSlice(p.DefaultCacheBehavior.AllowedMethods, fromMethods(b.AllowedMethods.Items))
	if b.AllowedMethods.CachedMethods != nil {
		p.DefaultCacheBehavior.CachedMethods = pointer.LateInitializeSlice(p.DefaultCacheBehavior.CachedMethods, fromMethods(b.AllowedMethods.CachedMethods.Items))
	}
}

func lateInitializeViewerCertificate(p *v1alpha1.DistributionParameters, vc *cloudfronttypes.ViewerCertificate) {
	if vc == nil {
		return
	}
	if p.ViewerCertificate == nil {
		p.ViewerCertificate = &v1alpha1.ViewerCertificate{}
	}
	p.ViewerCertificate.ACMCertificateARN = pointer.LateInitialize(p.ViewerCertificate.ACMCertificateARN, vc.ACMCertificateArn)
	p.ViewerCertificate.CloudFrontDefaultCertificate = pointer.LateInitialize(p.ViewerCertificate.CloudFrontDefaultCertificate, vc.CloudFrontDefaultCertificate)
	if p.ViewerCertificate.SSLSupportMethod == nil && vc.SSLSupportMethod != "" {
		p.ViewerCertificate.SSLSupportMethod = pointer.ToOrNilIfZeroValue(string(vc.SSLSupportMethod))
	}
	if p.ViewerCertificate.MinimumProtocolVersion == nil && vc.MinimumProtocolVersion != "" {
		p.ViewerCertificate.MinimumProtocolVersion = pointer.ToOrNilIfZeroValue(string(vc.MinimumProtocolVersion))
	}
}

// GenerateObservation generates and returns v1alpha1.DistributionExternalStatus which can be used as the status of the runtime object
func GenerateObservation(dist *cloudfronttypes.Distribution, etag string) v1alpha1.DistributionExternalStatus {
	return v1alpha1.DistributionExternalStatus{
		ID:               aws.ToString(dist.Id),
		ARN:              aws.ToString(dist.ARN),
		DomainName:       aws.ToString(dist.DomainName),
		HostedZoneID:     CloudFrontHostedZoneID,
		Status:           aws.ToString(dist.Status),
		ETag:             etag,
		LastModifiedTime: pointer.TimeToMetaTime(dist.LastModifiedTime),
	}
}

// originID returns the identifier of the origin, defaulting to its domain
// name.
func originID(o v1alpha1.Origin) string {
	if o.ID != nil {
		return *o.ID
	}
	return pointer.StringValue(o.DomainName)
}

func generateAliases(aliases []string) *cloudfronttypes.Aliases {
	out := &cloudfronttypes.Aliases{Quantity: aws.Int32(int32(len(aliases)))}
	if len(aliases) > 0 {
		out.Items = make([]string, len(aliases))
		copy(out.Items, aliases)
	}
	return out
}

func generateOrigins(o v1alpha1.Origin) *cloudfronttypes.Origins {
	origin := cloudfronttypes.Origin{
		Id:                    aws.String(originID(o)),
		DomainName:            o.DomainName,
		OriginPath:            aws.String(pointer.StringValue(o.OriginPath)),
		OriginAccessControlId: aws.String(pointer.StringValue(o.OriginAccessControlID)),
		// An S3 origin reached through an origin access control keeps the
		// legacy origin access identity empty.
		S3OriginConfig: &cloudfronttypes.S3OriginConfig{OriginAccessIdentity: aws.String("")},
	}
	return &cloudfronttypes.Origins{
		Quantity: aws.Int32(1),
		Items:    []cloudfronttypes.Origin{origin},
	}
}

func generateDefaultCacheBehavior(b v1alpha1.DefaultCacheBehavior, targetOriginID string) *cloudfronttypes.DefaultCacheBehavior {
	policy := pointer.StringValue(b.CachePolicyID)
	if policy == "" {
		policy = CachingOptimizedPolicyID
	}
	allowed := toMethods(b.AllowedMethods)
	cached := toMethods(b.CachedMethods)
	return &cloudfronttypes.DefaultCacheBehavior{
		TargetOriginId:       aws.String(targetOriginID),
		ViewerProtocolPolicy: cloudfronttypes.ViewerProtocolPolicy(b.ViewerProtocolPolicy),
		CachePolicyId:        aws.String(policy),
		Compress:             b.Compress,
		AllowedMethods: &cloudfronttypes.AllowedMethods{
			Quantity: aws.Int32(int32(len(allowed))),
			Items:    allowed,
			CachedMethods: &cloudfronttypes.CachedMethods{
				Quantity: aws.Int32(int32(len(cached))),
				Items:    cached,
			},
		},
	}
}

func toMethods(methods []string) []cloudfronttypes.Method {
	if len(methods) == 0 {
		return []cloudfronttypes.Method{cloudfronttypes.MethodGet, cloudfronttypes.MethodHead}
	}
	out := make([]cloudfronttypes.Method, 0, len(methods))
	for _, m := range methods {
		out = append(out, cloudfronttypes.Method(m))
	}
	return out
}

func fromMethods(methods []cloudfronttypes.Method) []string {
	if len(methods) == 0 {
		return nil
	}
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, string(m))
	}
	return out
}

func generateViewerCertificate(vc *v1alpha1.ViewerCertificate) *cloudfronttypes.ViewerCertificate {
	if vc == nil {
		return &cloudfronttypes.ViewerCertificate{CloudFrontDefaultCertificate: aws.Bool(true)}
	}
	out := &cloudfronttypes.ViewerCertificate{
		ACMCertificateArn:            vc.ACMCertificateARN,
		CloudFrontDefaultCertificate: vc.CloudFrontDefaultCertificate,
	}
	if vc.ACMCertificateARN != nil && vc.CloudFrontDefaultCertificate == nil {
		out.CloudFrontDefaultCertificate = aws.Bool(false)
	}
	if vc.SSLSupportMethod != nil {
		out.SSLSupportMethod = cloudfronttypes.SSLSupportMethod(*vc.SSLSupportMethod)
	}
	if vc.MinimumProtocolVersion != nil {
		out.MinimumProtocolVersion = cloudfronttypes.MinimumProtocolVersion(*vc.MinimumProtocolVersion)
	}
	return out
}

func generateRestrictions(r *v1alpha1.Restrictions) *cloudfronttypes.Restrictions {
	geo := &cloudfronttypes.GeoRestriction{
		RestrictionType: cloudfronttypes.GeoRestrictionTypeNone,
		Quantity:        aws.Int32(0),
	}
	if r != nil {
		geo.RestrictionType = cloudfronttypes.GeoRestrictionType(r.GeoRestriction.RestrictionType)
		geo.Quantity = aws.Int32(int32(len(r.GeoRestriction.Locations)))
		if len(r.GeoRestriction.Locations) > 0 {
			geo.Items = make([]string, len(r.GeoRestriction.Locations))
			copy(geo.Items, r.GeoRestriction.Locations)
		}
	}
	return &cloudfronttypes.Restrictions{GeoRestriction: geo}
}
