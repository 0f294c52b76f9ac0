/*
Copyright 2024 The WeiPS Authors.

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

package scheme

import (
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/weips/weips/apis/config/v1alpha1"
)

var (
	// Scheme knows the WeiPS configuration and run record types.
	Scheme = runtime.NewScheme()

	// Codecs decodes strictly: unknown fields are errors.
	Codecs = serializer.NewCodecFactory(Scheme, serializer.EnableStrict)
)

func init() {
	utilruntime.Must(v1alpha1.AddToScheme(Scheme))
}

// DecodeArgs decodes a YAML or JSON WeipsArgs document and applies defaults.
func DecodeArgs(data []byte) (*v1alpha1.WeipsArgs, error) {
	args, err := decodeArgs(data)
	if err != nil {
		return nil, err
	}
	Scheme.Default(args)
	return args, nil
}

// LoadArgs reads and decodes the WeipsArgs file at path.
func LoadArgs(path string) (*v1alpha1.WeipsArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeArgs(data)
}

// LoadArgsWithoutDefaults reads the WeipsArgs file at path leaving unset
// fields empty, so callers can override fields before Scheme.Default runs.
func LoadArgsWithoutDefaults(path string) (*v1alpha1.WeipsArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeArgs(data)
}

func decodeArgs(data []byte) (*v1alpha1.WeipsArgs, error) {
	obj, gvk, err := Codecs.UniversalDeserializer().Decode(data, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding WeipsArgs: %w", err)
	}
	args, ok := obj.(*v1alpha1.WeipsArgs)
	if !ok {
		return nil, fmt.Errorf("want a WeipsArgs document, got %s", gvk.Kind)
	}
	return args, nil
}

// DefaultArgs returns WeipsArgs with every default applied.
func DefaultArgs() *v1alpha1.WeipsArgs {
	args := &v1alpha1.WeipsArgs{}
	Scheme.Default(args)
	return args
}
