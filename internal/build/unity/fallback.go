package unity

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/teylo/teylo-backend/internal/build/domain"
)

// FallbackGame describes the placeholder bundle written when the engine is
// unavailable or fails. The bundle has the same file layout as a real WebGL
// build so the frontend player loads it unchanged.
type FallbackGame struct {
	Name        string
	Description string
	Category    string
}

var fallbackFiles = map[string]string{
	"Build/webgl.data":         "PLACEHOLDER_UNITY_DATA",
	"Build/webgl.framework.js": `console.log("WebGL framework placeholder");`,
	"Build/webgl.wasm":         "PLACEHOLDER_WASM_BINARY",
}

// WriteFallbackArtifacts writes a deterministic placeholder WebGL bundle to
// outputDir: index.html at the root plus the loader, data, framework, and
// wasm files under Build/. Failures wrap ErrFallbackSynthesis; the fallback
// is the last line of defense, so its failure fails the build.
func WriteFallbackArtifacts(outputDir string, game FallbackGame) error {
	if err := writeFallbackArtifacts(outputDir, game); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFallbackSynthesis, err)
	}
	return nil
}

func writeFallbackArtifacts(outputDir string, game FallbackGame) error {
	buildDir := filepath.Join(outputDir, "Build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("create fallback build dir: %w", err)
	}

	for rel, content := range fallbackFiles {
		if err := os.WriteFile(filepath.Join(outputDir, filepath.FromSlash(rel)), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write fallback file %s: %w", rel, err)
		}
	}

	if err := os.WriteFile(filepath.Join(buildDir, "webgl.loader.js"), []byte(fallbackLoaderJS), 0o644); err != nil {
		return fmt.Errorf("write fallback loader: %w", err)
	}

	var page strings.Builder
	if err := fallbackIndexTmpl.Execute(&page, game); err != nil {
		return fmt.Errorf("render fallback index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), []byte(page.String()), 0o644); err != nil {
		return fmt.Errorf("write fallback index: %w", err)
	}

	return nil
}

// fallbackLoaderJS mimics the Unity loader contract: createUnityInstance
// resolves with an object exposing SetFullscreen and SendMessage.
const fallbackLoaderJS = `function createUnityInstance(canvas, config, onProgress) {
  return new Promise(function (resolve) {
    var progress = 0;
    var interval = setInterval(function () {
      progress += 0.1;
      onProgress(Math.min(1, progress));
      if (progress >= 1) {
        clearInterval(interval);
        resolve({
          SetFullscreen: function () {},
          SendMessage: function (obj, method, param) {
            console.log("SendMessage:", obj, method, param);
          }
        });
      }
    }, 200);
  });
}
`

var fallbackIndexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Name}} - Unity WebGL Player</title>
  <script src="Build/webgl.loader.js"></script>
  <style>
    body { margin: 0; padding: 0; background-color: #231F20; }
    #unity-container { width: 100%; height: 100vh; position: relative; }
    #unity-canvas { width: 100%; height: 100%; background: #231F20; }
    #unity-info { position: absolute; left: 10px; top: 10px; padding: 10px; background: rgba(0,0,0,0.5); color: white; border-radius: 5px; font-family: Arial; max-width: 400px; }
  </style>
</head>
<body>
  <div id="unity-container">
    <canvas id="unity-canvas"></canvas>
    <div id="unity-info">
      <h2>{{.Name}}</h2>
      <p>{{.Description}}</p>
      <p>Game Type: {{.Category}}</p>
    </div>
  </div>
  <script>
    var canvas = document.querySelector("#unity-canvas");
    createUnityInstance(canvas, {
      dataUrl: "Build/webgl.data",
      frameworkUrl: "Build/webgl.framework.js",
      codeUrl: "Build/webgl.wasm"
    }, function (progress) {
      console.log("Loading: " + Math.round(progress * 100) + "%");
    });
  </script>
</body>
</html>
`))
