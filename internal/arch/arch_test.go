// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"pepvec/internal/pipeline": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/cli", "pepvec/internal/sentencescli", "pepvec/internal/splitcli",
			"pepvec/internal/traincli", "pepvec/internal/evalcli", "pepvec/internal/plotcli",
			"pepvec/internal/writers", "pepvec/internal/output",
			"pepvec/cmd/",
		},
		"pepvec/internal/writers": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/cli", "pepvec/internal/sentencescli", "pepvec/internal/splitcli",
			"pepvec/internal/pipeline", "pepvec/cmd/",
		},
		"pepvec/internal/output": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/cli", "pepvec/internal/sentencescli", "pepvec/internal/splitcli",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
		"pepvec/internal/pretty": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/cli", "pepvec/internal/sentencescli", "pepvec/internal/splitcli",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
		"pepvec/internal/dataset": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/cli", "pepvec/internal/traincli", "pepvec/internal/evalcli",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
		"pepvec/internal/model": {
			"pepvec/internal/appcore", "pepvec/internal/app",
			"pepvec/internal/traincli", "pepvec/internal/evalcli", "pepvec/internal/trainapp",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
		"pepvec/internal/evalstats": {
			"pepvec/internal/appcore", "pepvec/internal/app", "pepvec/internal/evalapp",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
		"pepvec/internal/plotviz": {
			"pepvec/internal/appcore", "pepvec/internal/app", "pepvec/internal/plotapp",
			"pepvec/internal/pipeline", "pepvec/internal/writers", "pepvec/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pepvec/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "pepvec/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
