package cmd

import _ "github.com/mj1618/pinwin/internal/platform/win32"
