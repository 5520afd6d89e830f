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

package s3

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"

	"github.com/crossplane-contrib/provider-aws-website/apis/s3/common"
)

var (
	// an arbitrary managed resource
	effect          = "Allow"
	statementID     = aws.String("1")
	distributionARN = "arn:aws:cloudfront::123456789012:distribution/EDFDVBD6EXAMPLE"
)

type statementModifier func(statement *common.BucketPolicyStatement)

func withPrincipal(s *common.BucketPrincipal) statementModifier {
	return func(statement *common.BucketPolicyStatement) {
		statement.Principal = s
	}
}

func withAction(s []string) statementModifier {
	return func(statement *common.BucketPolicyStatement) {
		statement.Action = s
	}
}

func withResource(s []string) statementModifier {
	return func(statement *common.BucketPolicyStatement) {
		statement.Resource = s
	}
}

func withCondition(c []common.Condition) statementModifier {
	return func(statement *common.BucketPolicyStatement) {
		statement.Condition = c
	}
}

func policyStatement(m ...statementModifier) *common.BucketPolicyStatement {
	cr := &common.BucketPolicyStatement{
		SID:    statementID,
		Effect: effect,
	}
	for _, f := range m {
		f(cr)
	}
	return cr
}

func TestSerializeBucketPolicyStatement(t *testing.T) {
	cases := map[string]struct {
		in  common.BucketPolicyStatement
		out string
		err error
	}{
		"BasicInput": {
			in:  *policyStatement(),
			out: `{"Effect":"Allow","Sid":"1"}`,
		},
		"ValidInput": {
			in: *policyStatement(
				withPrincipal(&common.BucketPrincipal{
					AllowAnon: true,
				}),
				withAction([]string{"s3:ListBucket"}),
				withResource([]string{"arn:aws:s3:::example-com-site"}),
			),
			out: `{"Action":"s3:ListBucket","Effect":"Allow","Principal":"*","Resource":"arn:aws:s3:::example-com-site","Sid":"1"}`,
		},
		"ServiceReadScopedToDistribution": {
			in: *policyStatement(
				withPrincipal(&common.BucketPrincipal{
					Service: []string{"cloudfront.amazonaws.com"},
				}),
				withAction([]string{"s3:GetObject"}),
				withResource([]string{"arn:aws:s3:::example-com-site/*"}),
				withCondition([]common.Condition{
					{
						OperatorKey: "StringEquals",
						Conditions: []common.ConditionPair{
							{
								ConditionKey:         "AWS:SourceArn",
								ConditionStringValue: &distributionARN,
							},
						},
					},
				}),
			),
			out: `{"Condition":{"StringEquals":{"AWS:SourceArn":"arn:aws:cloudfront::123456789012:distribution/EDFDVBD6EXAMPLE"}},"Action":"s3:GetObject","Effect":"Allow","Principal":{"Service":"cloudfront.amazonaws.com"},"Resource":"arn:aws:s3:::example-com-site/*","Sid":"1"}`,
		},
		"ComplexInput": {
			in: *policyStatement(
				withPrincipal(&common.BucketPrincipal{
					AWSPrincipals: []common.AWSPrincipal{
						{
							UserARN: aws.String("arn:aws:iam::111122223333:userARN"),
						},
						{
							AWSAccountID: aws.String("111122223333"),
						},
						{
							IAMRoleARN: aws.String("arn:aws:iam::111122223333:roleARN"),
						},
					},
				}),
				withAction([]string{"s3:ListBucket"}),
				withResource([]string{"arn:aws:s3:::example-com-site"}),
				withCondition([]common.Condition{
					{
						OperatorKey: "test",
						Conditions: []common.ConditionPair{
							{
								ConditionKey:         "test",
								ConditionStringValue: aws.String("testKey"),
							},
						},
					},
				}),
			),
			out: `{"Condition":{"test":{"test":"testKey"}},"Action":"s3:ListBucket","Effect":"Allow","Principal":{"AWS":["arn:aws:iam::111122223333:userARN","111122223333","arn:aws:iam::111122223333:roleARN"]},"Resource":"arn:aws:s3:::example-com-site","Sid":"1"}`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			js, err := SerializeBucketPolicyStatement(tc.in)

			if diff := cmp.Diff(tc.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
				return
			}

			var out interface{}
			err = json.Unmarshal([]byte(tc.out), &out)
			if diff := cmp.Diff(tc.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
				return
			}

			if diff := cmp.Diff(js, out); diff != "" {
				t.Errorf("SerializeBucketPolicyStatement(...): -want, +got\n:%s", diff)
			}
		})
	}
}

func TestDiffParsedPolicies(t *testing.T) {
	arrayFormPolicy := `{"Version":"2012-10-17","Statement":[{"Sid":"1","Effect":"Allow",` +
		`"Principal":{"Service":["cloudfront.amazonaws.com"]},"Action":["s3:GetObject"],` +
		`"Resource":["arn:aws:s3:::example-com-site/*"],` +
		`"Condition":{"StringEquals":{"AWS:SourceArn":"arn:aws:cloudfront::123456789012:distribution/EDFDVBD6EXAMPLE"}}}]}`

	type args struct {
		spec     *common.BucketPolicyBody
		external *string
	}
	cases := map[string]struct {
		args      args
		wantEqual bool
		wantErr   error
	}{
		"EquivalentDespiteStringVersusArray": {
			// S3 rewrites single element arrays to plain strings when it
			// stores a policy. The parsed comparison must not see drift.
			args: args{
				spec: &common.BucketPolicyBody{
					Version: "2012-10-17",
					Statements: []common.BucketPolicyStatement{
						*policyStatement(
							withPrincipal(&common.BucketPrincipal{Service: []string{"cloudfront.amazonaws.com"}}),
							withAction([]string{"s3:GetObject"}),
							withResource([]string{"arn:aws:s3:::example-com-site/*"}),
							withCondition([]common.Condition{
								{
									OperatorKey: "StringEquals",
									Conditions: []common.ConditionPair{
										{
											ConditionKey:         "AWS:SourceArn",
											ConditionStringValue: &distributionARN,
										},
									},
								},
							}),
						),
					},
				},
				external: &arrayFormPolicy,
			},
			wantEqual: true,
		},
		"DifferentResource": {
			args: args{
				spec: &common.BucketPolicyBody{
					Version: "2012-10-17",
					Statements: []common.BucketPolicyStatement{
						*policyStatement(
							withPrincipal(&common.BucketPrincipal{Service: []string{"cloudfront.amazonaws.com"}}),
							withAction([]string{"s3:GetObject"}),
							withResource([]string{"arn:aws:s3:::another-bucket/*"}),
						),
					},
				},
				external: &arrayFormPolicy,
			},
			wantEqual: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			diff, err := DiffParsedPolicies(tc.args.spec, tc.args.external)

			if gotErr := cmp.Diff(tc.wantErr, err, test.EquateErrors()); gotErr != "" {
				t.Errorf("r: -want, +got:\n%s", gotErr)
				return
			}
			if equal := diff == ""; equal != tc.wantEqual {
				t.Errorf("DiffParsedPolicies(...): wantEqual %t, diff:\n%s", tc.wantEqual, diff)
			}
		})
	}
}
