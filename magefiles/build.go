//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binaryName = "oglc"
	shaderDir  = "engine/resources/shaders"
)

type Build mg.Namespace

// Compiles the tutorial runner into bin/.
func (Build) Binary() error {
	mg.Deps(buildShaders)
	return goRun("build", "-o", filepath.Join("bin", binaryName), ".")
}

// Validates every GLSL file with glslangValidator when it is installed.
func (Build) Shaders() error {
	return buildShaders()
}

func buildShaders() error {
	if !haveTool(shaderValidator) {
		fmt.Printf("%s not found, skipping shader validation\n", shaderValidator)
		return nil
	}
	files, err := shaderSources(shaderDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := validateShader(shaderDir, f); err != nil {
			return err
		}
	}
	fmt.Printf("%d shaders ok\n", len(files))
	return nil
}
