package icc

import (
	"encoding/binary"
	"fmt"
)

const HeaderSize = 128

type RenderingIntent uint32

const (
	PerceptualRenderingIntent RenderingIntent = iota
	RelativeColorimetricRenderingIntent
	SaturationRenderingIntent
	AbsoluteColorimetricRenderingIntent
)

// Header is the fixed 128 byte block at the start of every ICC profile.
type Header struct {
	ProfileSize        uint32
	PreferredCMM       Signature
	Version            uint32
	DeviceClass        Signature
	DataColorSpace     Signature
	ProfileConnection  Signature
	CreationDateTime   [6]uint16
	FileSignature      Signature
	PrimaryPlatform    Signature
	Flags              uint32
	DeviceManufacturer Signature
	DeviceModel        Signature
	DeviceAttributes   uint64
	RenderingIntent    RenderingIntent
	PCSIlluminant      [3]int32
	ProfileCreator     Signature
	ProfileID          [16]byte
	Reserved           [28]byte
}

func (h Header) MajorVersion() int { return int(h.Version >> 24) }
func (h Header) MinorVersion() int { return int((h.Version >> 20) & 0xf) }

func (h Header) String() string {
	return fmt.Sprintf("Header{size: %d version: %d.%d class: %v space: %v pcs: %v}",
		h.ProfileSize, h.MajorVersion(), h.MinorVersion(), h.DeviceClass, h.DataColorSpace, h.ProfileConnection)
}

func (h *Header) decode(data []byte) error {
	if _, err := binary.Decode(data, binary.BigEndian, h); err != nil {
		return err
	}
	if h.FileSignature != ProfileFileSignature {
		return fmt.Errorf("invalid profile file signature: %v", h.FileSignature)
	}
	return nil
}

func (h *Header) encode() []byte {
	ans := make([]byte, HeaderSize)
	_, _ = binary.Encode(ans, binary.BigEndian, h)
	return ans
}
