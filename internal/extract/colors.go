package extract

import "fmt"

// hexFromComponents converts normalized 0-1 color components to an
// uppercase #RRGGBB string. It yields "" when fewer than three components
// are present or a scaled value falls outside 0-255; it never panics.
func hexFromComponents(components []float64) string {
	if len(components) < 3 {
		return ""
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v := int(components[i] * 255)
		if v < 0 || v > 255 {
			return ""
		}
		rgb[i] = v
	}
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

// hexFromPacked converts a packed 24-bit integer color to #RRGGBB.
// Red sits in bits 16-23, green in bits 8-15, blue in bits 0-7.
// Values outside the 24-bit range yield "".
func hexFromPacked(packed int) string {
	if packed < 0 || packed > 0xFFFFFF {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", (packed>>16)&0xFF, (packed>>8)&0xFF, packed&0xFF)
}
