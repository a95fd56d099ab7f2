package icc

type Signature uint32

const (
	ProfileFileSignature Signature = 0x61637370 // 'acsp'
	TextTagSignature     Signature = 0x74657874 // 'text'

	DescSignature                          Signature = 0x64657363 // 'desc'
	MultiLocalisedUnicodeSignature         Signature = 0x6D6C7563 // 'mluc'
	DeviceManufacturerDescriptionSignature Signature = 0x646d6e64 // 'dmnd'
	DeviceModelDescriptionSignature        Signature = 0x646d6464 // 'dmdd'

	RedTRCTagSignature         Signature = 0x72545243 // 'rTRC'
	GreenTRCTagSignature       Signature = 0x67545243 // 'gTRC'
	BlueTRCTagSignature        Signature = 0x62545243 // 'bTRC'
	VideoCardGammaTagSignature Signature = 0x76636774 // 'vcgt'
	NativeDisplayInfoSignature Signature = 0x6e64696e // 'ndin'

	CurveTypeSignature           Signature = 0x63757276 // 'curv'
	ParametricCurveTypeSignature Signature = 0x70617261 // 'para'

	DisplayClassSignature Signature = 0x6d6e7472 // 'mntr'
	RGBSpaceSignature     Signature = 0x52474220 // 'RGB '
	XYZSpaceSignature     Signature = 0x58595a20 // 'XYZ '
)

// TRCTagSignatures are the per channel response curve tags in channel order.
var TRCTagSignatures = [3]Signature{RedTRCTagSignature, GreenTRCTagSignature, BlueTRCTagSignature}

func maskNull(b byte) byte {
	switch b {
	case 0:
		return ' '
	default:
		return b
	}
}

// SignatureFromString converts a four character code such as "vcgt" into a
// Signature. Shorter codes are padded with spaces.
func SignatureFromString(code string) Signature {
	var s Signature
	for i := range 4 {
		b := byte(' ')
		if i < len(code) {
			b = code[i]
		}
		s = s<<8 | Signature(b)
	}
	return s
}

func (s Signature) Bytes() [4]byte {
	return [4]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
}

func (s Signature) String() string {
	v := []byte{
		(maskNull(byte((s >> 24) & 0xff))),
		(maskNull(byte((s >> 16) & 0xff))),
		(maskNull(byte((s >> 8) & 0xff))),
		(maskNull(byte(s & 0xff))),
	}
	return "'" + string(v) + "'"
}
