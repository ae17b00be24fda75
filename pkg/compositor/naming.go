package compositor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPath derives the output file name for a base image stamped with the
// named icon: <base>_with_icon_<icon><ext>. The file is placed next to the
// base image and keeps the base image's extension; the icon's extension is
// dropped.
func OutputPath(basePath, iconName string) string {
	ext := filepath.Ext(basePath)
	base := strings.TrimSuffix(filepath.Base(basePath), ext)
	icon := strings.TrimSuffix(iconName, filepath.Ext(iconName))
	return filepath.Join(filepath.Dir(basePath), fmt.Sprintf("%s_with_icon_%s%s", base, icon, ext))
}
