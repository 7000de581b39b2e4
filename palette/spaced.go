// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cogentcore.org/core/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// MarkerColor returns the color of the selection marker of given
// index, as a "#rrggbb" string: the widely spaced [colors.Spaced]
// sequence, so that successive markers are easy to tell apart.
func MarkerColor(idx int) string {
	c, _ := colorful.MakeColor(colors.Spaced(idx))
	return c.Hex()
}
