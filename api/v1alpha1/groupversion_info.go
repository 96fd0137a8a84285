/*
Copyright 2025 The llm-d Authors

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

// Package v1alpha1 contains the versioned document types emitted by the shelf optimizer.
// +groupName=shelves.llm-d.ai
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "shelves.llm-d.ai", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = runtime.NewSchemeBuilder(addKnownTypes)

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// Kind names
const (
	KindShelfArrangement     = "ShelfArrangement"
	KindShelfArrangementList = "ShelfArrangementList"
)

func addKnownTypes(scheme *runtime.Scheme) error {
	scheme.AddKnownTypes(GroupVersion, &ShelfArrangement{}, &ShelfArrangementList{})
	metav1.AddToGroupVersion(scheme, GroupVersion)
	return nil
}

// TypeMeta returns the TypeMeta of a ShelfArrangement document.
func TypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{
		APIVersion: GroupVersion.String(),
		Kind:       KindShelfArrangement,
	}
}
