//go:build js

package main

import (
	"log/slog"

	webgl "github.com/seqsense/webgl-go"
)

func showDebugInfo(gl *webgl.WebGL, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("failed to get debug info", "recover", r)
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logger.Debug("GPU info hidden by the browser privacy setting")
		return
	}
	logger.Debug("gizmo context",
		"vendor", gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		"renderer", gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
		"maxTextureSize", gl.GetParameter(gl.JS().Get("MAX_TEXTURE_SIZE").Int()).Int(),
	)
}
