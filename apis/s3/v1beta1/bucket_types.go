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

package v1beta1

import (
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// ResourceCredentialsSecretRegionKey is the key for region that the S3 bucket is located
	ResourceCredentialsSecretRegionKey = "region"

	// ResourceCredentialsSecretWebsiteEndpointKey is the key for the website
	// endpoint of the S3 bucket, set only when a website configuration exists
	ResourceCredentialsSecretWebsiteEndpointKey = "websiteEndpoint"
)

// BucketParameters are parameters for configuring the calls made to AWS Bucket API.
type BucketParameters struct {
	// The canned ACL to apply to the bucket.
	// +kubebuilder:validation:Enum=private;public-read;public-read-write;authenticated-read;aws-exec-read;bucket-owner-read;bucket-owner-full-control;log-delivery-write
	// +optional
	ACL *string `json:"acl,omitempty"`

	// LocationConstraint specifies the Region where the bucket will be created.
	// It is a required field.
	// Due to AWS API limitations lacking on a proper response, when this field is set to a wrong value,
	// or to non-existent region on bucket creation, it's impossible forwarding a meaningful status message to the user
	// about the problem, producing connection errors instead.
	LocationConstraint string `json:"locationConstraint"`

	// The container element for object ownership for a bucket's ownership controls.
	// BucketOwnerPreferred - Objects uploaded to the bucket change ownership to the
	// bucket owner if the objects are uploaded with the bucket-owner-full-control
	// canned ACL. ObjectWriter - The uploading account will own the object if the
	// object is uploaded with the bucket-owner-full-control canned ACL.
	// BucketOwnerEnforced - Access control lists (ACLs) are disabled and no longer
	// affect permissions. The bucket owner automatically owns and has full control
	// over every object in the bucket.
	// +kubebuilder:validation:Enum=BucketOwnerPreferred;ObjectWriter;BucketOwnerEnforced
	// +optional
	ObjectOwnership *string `json:"objectOwnership,omitempty"`

	// Specifies website configuration parameters for an Amazon S3 bucket.
	// See the AWS API reference guide for Amazon Simple Storage Service's API operation PutBucketWebsite for usage
	// and error information. See also, https://docs.aws.amazon.com/goto/WebAPI/s3-2006-03-01/PutBucketWebsite
	// +optional
	WebsiteConfiguration *WebsiteConfiguration `json:"websiteConfiguration,omitempty"`

	// PublicAccessBlockConfiguration that you want to apply to this Amazon
	// S3 bucket.
	PublicAccessBlockConfiguration *PublicAccessBlockConfiguration `json:"publicAccessBlockConfiguration,omitempty"`

	// Sets the tags for a bucket.
	// Use tags to organize your AWS bill to reflect your own cost structure.
	// For more information, see Billing and usage reporting for S3 buckets.
	// (https://docs.aws.amazon.com/AmazonS3/latest/dev/BucketBilling.html) in the Amazon
	// Simple Storage Service Developer Guide.
	// +optional
	BucketTagging *Tagging `json:"tagging,omitempty"`
}

// BucketSpec represents the desired state of the Bucket.
type BucketSpec struct {
	xpv1.ResourceSpec `json:",inline"`
	ForProvider       BucketParameters `json:"forProvider"`
}

// BucketExternalStatus keeps the state for the external resource
type BucketExternalStatus struct {
	// ARN is the Amazon Resource Name (ARN) specifying the S3 Bucket. For more information
	// about ARNs and how to use them, see S3 Resources (https://docs.aws.amazon.com/AmazonS3/latest/dev/s3-arn-format.html)
	// in the Amazon Simple Storage Service guide.
	ARN string `json:"arn"`

	// RegionalDomainName is the region-qualified DNS name of the bucket,
	// bucketname.s3.region.amazonaws.com. CloudFront origins must use this
	// form to avoid the redirects the global endpoint answers with while DNS
	// of a fresh bucket propagates.
	RegionalDomainName string `json:"regionalDomainName,omitempty"`

	// WebsiteEndpoint is the S3 static website hosting endpoint of the
	// bucket, set only when a website configuration exists.
	WebsiteEndpoint string `json:"websiteEndpoint,omitempty"`
}

// BucketStatus represents the observed state of the Bucket.
type BucketStatus struct {
	xpv1.ResourceStatus `json:",inline"`
	AtProvider          BucketExternalStatus `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// An Bucket is a managed resource that represents an AWS S3 Bucket.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,categories={crossplane,managed,aws}
type Bucket struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BucketSpec   `json:"spec"`
	Status BucketStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BucketList contains a list of Buckets
type BucketList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bucket `json:"items"`
}

// AddTag adds a tag to this Bucket. If it already exists, it will be overwritten.
// It returns true if the tag has been added/changed. Otherwise false.
//
// Buckets keep their tags under spec.forProvider.tagging.tagSet, so the
// method set generator cannot produce this implementation.
func (mg *Bucket) AddTag(key string, value string) bool {
	newTag := Tag{
		Key:   &key,
		Value: &value,
	}
	if mg.Spec.ForProvider.BucketTagging == nil {
		mg.Spec.ForProvider.BucketTagging = &Tagging{TagSet: []Tag{newTag}}
		return true
	}
	for i, ta := range mg.Spec.ForProvider.BucketTagging.TagSet {
		if ta.Key != nil && *ta.Key == key {
			if ta.Value != nil && *ta.Value == value {
				return false
			}
			mg.Spec.ForProvider.BucketTagging.TagSet[i] = newTag
			return true
		}
	}
	mg.Spec.ForProvider.BucketTagging.TagSet = append(mg.Spec.ForProvider.BucketTagging.TagSet, newTag)
	return true
}
