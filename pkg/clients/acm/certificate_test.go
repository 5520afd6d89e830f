package acm

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	acmtypes "github.com/aws/aws-sdk-go-v2/service/acm/types"
	"github.com/aws/smithy-go/document"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/crossplane-contrib/provider-aws-website/apis/acm/v1beta1"
)

var (
	domainName     = "example.com"
	certificateArn = "arn:aws:acm:us-east-1:123456789012:certificate/12345678-1234-1234-1234-123456789012"
)

func TestGenerateCreateCertificateInput(t *testing.T) {
	cases := map[string]struct {
		in  v1beta1.CertificateParameters
		out acm.RequestCertificateInput
	}{
		"FilledInput": {
			in: v1beta1.CertificateParameters{
				DomainName: domainName,
				Options: &v1beta1.CertificateOptions{
					CertificateTransparencyLoggingPreference: "DISABLED",
				},
				SubjectAlternativeNames: []*string{aws.String("www.example.com")},
				KeyAlgorithm:            aws.String("RSA_2048"),
				ValidationMethod:        "DNS",
				Tags: []v1beta1.Tag{{
					Key:   "key1",
					Value: "value1",
				}},
			},
			out: acm.RequestCertificateInput{
				DomainName:              aws.String(domainName),
				Options:                 &acmtypes.CertificateOptions{CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreferenceDisabled},
				SubjectAlternativeNames: []string{"www.example.com"},
				KeyAlgorithm:            acmtypes.KeyAlgorithmRsa2048,
				ValidationMethod:        acmtypes.ValidationMethodDns,
				Tags: []acmtypes.Tag{{
					Key:   aws.String("key1"),
					Value: aws.String("value1"),
				}},
			},
		},
		"MinimalInput": {
			in: v1beta1.CertificateParameters{
				DomainName:       domainName,
				ValidationMethod: "DNS",
			},
			out: acm.RequestCertificateInput{
				DomainName:       aws.String(domainName),
				ValidationMethod: acmtypes.ValidationMethodDns,
				Tags:             []acmtypes.Tag{},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := GenerateCreateCertificateInput(tc.in)

			if diff := cmp.Diff(r, &tc.out, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateCreateCertificateInput(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestLateInitializeCertificate(t *testing.T) {
	type args struct {
		spec *v1beta1.CertificateParameters
		in   *acmtypes.CertificateDetail
	}
	cases := map[string]struct {
		args args
		want *v1beta1.CertificateParameters
	}{
		"AllFilledNoDiff": {
			args: args{
				spec: &v1beta1.CertificateParameters{
					DomainName: domainName,
					Options: &v1beta1.CertificateOptions{
						CertificateTransparencyLoggingPreference: "ENABLED",
					},
					KeyAlgorithm: aws.String("RSA_2048"),
				},
				in: &acmtypes.CertificateDetail{
					DomainName:   aws.String(domainName),
					Options:      &acmtypes.CertificateOptions{CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreferenceDisabled},
					KeyAlgorithm: acmtypes.KeyAlgorithmRsa2048,
				},
			},
			want: &v1beta1.CertificateParameters{
				DomainName: domainName,
				Options: &v1beta1.CertificateOptions{
					CertificateTransparencyLoggingPreference: "ENABLED",
				},
				KeyAlgorithm: aws.String("RSA_2048"),
			},
		},
		"PartialFilled": {
			args: args{
				spec: &v1beta1.CertificateParameters{
					DomainName: domainName,
				},
				in: &acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					Options:                 &acmtypes.CertificateOptions{CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreferenceDisabled},
					KeyAlgorithm:            acmtypes.KeyAlgorithmRsa2048,
					SubjectAlternativeNames: []string{domainName, "www.example.com"},
				},
			},
			want: &v1beta1.CertificateParameters{
				DomainName: domainName,
				Options: &v1beta1.CertificateOptions{
					CertificateTransparencyLoggingPreference: "DISABLED",
				},
				KeyAlgorithm:            aws.String("RSA_2048"),
				SubjectAlternativeNames: []*string{aws.String(domainName), aws.String("www.example.com")},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			LateInitializeCertificate(tc.args.spec, tc.args.in)
			if diff := cmp.Diff(tc.args.spec, tc.want); diff != "" {
				t.Errorf("LateInitializeCertificate(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestGenerateCertificateStatus(t *testing.T) {
	notBefore := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	notAfter := notBefore.AddDate(1, 1, 0)

	cases := map[string]struct {
		in  acmtypes.CertificateDetail
		out v1beta1.CertificateExternalStatus
	}{
		"IssuedWithValidationRecord": {
			in: acmtypes.CertificateDetail{
				CertificateArn:     aws.String(certificateArn),
				RenewalEligibility: acmtypes.RenewalEligibilityEligible,
				Status:             acmtypes.CertificateStatusIssued,
				Type:               acmtypes.CertificateTypeAmazonIssued,
				NotBefore:          &notBefore,
				NotAfter:           &notAfter,
				DomainValidationOptions: []acmtypes.DomainValidation{{
					DomainName: aws.String(domainName),
					ResourceRecord: &acmtypes.ResourceRecord{
						Name:  aws.String("_a79865eb4cd1a6ab990a45779b4e0b96.example.com."),
						Type:  acmtypes.RecordTypeCname,
						Value: aws.String("_424c7224e9b0146f9a8808af955727d0.acm-validations.aws."),
					},
				}},
			},
			out: v1beta1.CertificateExternalStatus{
				CertificateARN:     certificateArn,
				RenewalEligibility: "ELIGIBLE",
				Status:             "ISSUED",
				Type:               "AMAZON_ISSUED",
				NotBefore:          &metav1.Time{Time: notBefore},
				NotAfter:           &metav1.Time{Time: notAfter},
				ResourceRecord: &v1beta1.ResourceRecord{
					Name:  aws.String("_a79865eb4cd1a6ab990a45779b4e0b96.example.com."),
					Type:  aws.String("CNAME"),
					Value: aws.String("_424c7224e9b0146f9a8808af955727d0.acm-validations.aws."),
				},
			},
		},
		"PendingWithoutRecord": {
			in: acmtypes.CertificateDetail{
				CertificateArn:     aws.String(certificateArn),
				RenewalEligibility: acmtypes.RenewalEligibilityIneligible,
				Status:             acmtypes.CertificateStatusPendingValidation,
				Type:               acmtypes.CertificateTypeAmazonIssued,
			},
			out: v1beta1.CertificateExternalStatus{
				CertificateARN:     certificateArn,
				RenewalEligibility: "INELIGIBLE",
				Status:             "PENDING_VALIDATION",
				Type:               "AMAZON_ISSUED",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := GenerateCertificateStatus(tc.in)
			if diff := cmp.Diff(r, tc.out); diff != "" {
				t.Errorf("GenerateCertificateStatus(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestIsCertificateUpToDate(t *testing.T) {
	type args struct {
		p    v1beta1.CertificateParameters
		cd   acmtypes.CertificateDetail
		tags []acmtypes.Tag
	}

	cases := map[string]struct {
		args args
		want bool
	}{
		"SameFields": {
			args: args{
				cd: acmtypes.CertificateDetail{
					Options: &acmtypes.CertificateOptions{CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreferenceDisabled},
				},
				p: v1beta1.CertificateParameters{
					Options: &v1beta1.CertificateOptions{
						CertificateTransparencyLoggingPreference: "DISABLED",
					},
					Tags: []v1beta1.Tag{{
						Key:   "key1",
						Value: "value1",
					}},
				},
				tags: []acmtypes.Tag{{
					Key:   aws.String("key1"),
					Value: aws.String("value1"),
				}},
			},
			want: true,
		},
		"DifferentOptions": {
			args: args{
				cd: acmtypes.CertificateDetail{
					Options: &acmtypes.CertificateOptions{CertificateTransparencyLoggingPreference: acmtypes.CertificateTransparencyLoggingPreferenceEnabled},
				},
				p: v1beta1.CertificateParameters{
					Options: &v1beta1.CertificateOptions{
						CertificateTransparencyLoggingPreference: "DISABLED",
					},
				},
			},
			want: false,
		},
		"DifferentTags": {
			args: args{
				cd: acmtypes.CertificateDetail{},
				p: v1beta1.CertificateParameters{
					Tags: []v1beta1.Tag{{
						Key:   "key1",
						Value: "value1",
					}},
				},
				tags: []acmtypes.Tag{{
					Key:   aws.String("key1"),
					Value: aws.String("stale"),
				}},
			},
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := IsCertificateUpToDate(tc.args.p, tc.args.cd, tc.args.tags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestRequiresReplacement(t *testing.T) {
	type args struct {
		p  v1beta1.CertificateParameters
		cd acmtypes.CertificateDetail
	}

	cases := map[string]struct {
		args args
		want bool
	}{
		"Unchanged": {
			args: args{
				p: v1beta1.CertificateParameters{
					DomainName:              domainName,
					SubjectAlternativeNames: []*string{aws.String("www.example.com")},
				},
				cd: acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					SubjectAlternativeNames: []string{domainName, "www.example.com"},
				},
			},
			want: false,
		},
		"DifferentDomainName": {
			args: args{
				p: v1beta1.CertificateParameters{
					DomainName: "example.org",
				},
				cd: acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					SubjectAlternativeNames: []string{domainName},
				},
			},
			want: true,
		},
		"AddedAlternativeName": {
			args: args{
				p: v1beta1.CertificateParameters{
					DomainName:              domainName,
					SubjectAlternativeNames: []*string{aws.String("www.example.com")},
				},
				cd: acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					SubjectAlternativeNames: []string{domainName},
				},
			},
			want: true,
		},
		"DifferentKeyAlgorithm": {
			args: args{
				p: v1beta1.CertificateParameters{
					DomainName:   domainName,
					KeyAlgorithm: aws.String("EC_prime256v1"),
				},
				cd: acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					SubjectAlternativeNames: []string{domainName},
					KeyAlgorithm:            acmtypes.KeyAlgorithmRsa2048,
				},
			},
			want: true,
		},
		"UnpinnedKeyAlgorithm": {
			args: args{
				p: v1beta1.CertificateParameters{
					DomainName: domainName,
				},
				cd: acmtypes.CertificateDetail{
					DomainName:              aws.String(domainName),
					SubjectAlternativeNames: []string{domainName},
					KeyAlgorithm:            acmtypes.KeyAlgorithmRsa2048,
				},
			},
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := RequiresReplacement(tc.args.p, tc.args.cd)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("RequiresReplacement(...): -want, +got:\n%s", diff)
			}
		})
	}
}
