package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/goshapes/shader"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide ANGLE translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// Translator adapts the ANGLE translator to shader.Translator. Sources are
// WebGL2; output is GLSL 410 for desktop GL or ESSL for GLES contexts.
type Translator struct {
	isGLES bool
}

func New(isGLES bool) (*Translator, error) {
	if _, err := GetTranslator(); err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	return &Translator{isGLES: isGLES}, nil
}

func (t *Translator) Translate(stage shader.Stage, source string) (string, map[string]string, error) {
	tr, err := GetTranslator()
	if err != nil {
		return "", nil, err
	}
	outputFormat := gst.OutputFormatGLSL410
	if t.isGLES {
		outputFormat = gst.OutputFormatESSL
	}
	out, err := tr.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return "", nil, err
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}
