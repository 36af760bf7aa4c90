//go:build mage

package main

import (
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const shaderValidator = "glslangValidator"

// glslStages maps the file extensions glslangValidator infers a stage from.
var glslStages = map[string]string{
	".vert": "vertex",
	".frag": "fragment",
	".geom": "geometry",
}

func haveTool(name string) bool {
	_, err := exec.LookPath(name)
	if err != nil && mg.Verbose() {
		fmt.Printf("%s not on PATH: %s\n", name, err)
	}
	return err == nil
}

// goRun streams a go subcommand to the terminal.
func goRun(args ...string) error {
	fmt.Printf("go %s\n", strings.Join(args, " "))
	if err := sh.RunV("go", args...); err != nil {
		return fmt.Errorf("go %s: %w", args[0], err)
	}
	return nil
}

// shaderSources lists the GLSL files under root, relative to it.
func shaderSources(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if _, ok := glslStages[strings.ToLower(filepath.Ext(p))]; !ok {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

// validateShader runs the validator from root. Its output is only shown
// on failure or in verbose mode.
func validateShader(root, file string) error {
	stage := glslStages[strings.ToLower(filepath.Ext(file))]
	if mg.Verbose() {
		fmt.Printf("validating %s shader %s\n", stage, file)
	}
	cmd := exec.Command(shaderValidator, file)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s shader %s: %w\n%s", stage, filepath.Join(root, file), err, out)
	}
	if mg.Verbose() && len(out) > 0 {
		fmt.Print(string(out))
	}
	return nil
}
