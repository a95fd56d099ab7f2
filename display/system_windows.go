//go:build windows

package display

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	gdi32                  = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procGetDeviceGammaRamp = gdi32.NewProc("GetDeviceGammaRamp")
	procGetICMProfileW     = gdi32.NewProc("GetICMProfileW")
)

const (
	smCXScreen = 0
	smCYScreen = 1
	// The screen device context is the only one GDI exposes a ramp for
	primaryDisplay ID = 1
)

// System reads gamma ramps and profiles of the primary display through GDI.
type System struct{}

var _ Provider = System{}

func NewSystem() System { return System{} }

func with_screen_dc(f func(hdc uintptr) error) error {
	hdc, _, err := procGetDC.Call(0)
	if hdc == 0 {
		return fmt.Errorf("GetDC failed: %w", err)
	}
	defer procReleaseDC.Call(0, hdc)
	return f(hdc)
}

func check_display(id ID) error {
	if id != primaryDisplay {
		return fmt.Errorf("%w: unknown display %d", ErrNotAvailable, id)
	}
	return nil
}

func (System) Displays() ([]Display, error) {
	w, _, _ := procGetSystemMetrics.Call(smCXScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYScreen)
	return []Display{{ID: primaryDisplay, Name: "Primary display", Bounds: image.Rect(0, 0, int(w), int(h))}}, nil
}

func (System) DriverTableSize(id ID) (int, error) {
	if err := check_display(id); err != nil {
		return 0, err
	}
	return RampBlobSize, nil
}

func (System) ReadDriverTable(id ID, dst []byte) (n int, err error) {
	if err = check_display(id); err != nil {
		return 0, err
	}
	var ramp Ramp
	err = with_screen_dc(func(hdc uintptr) error {
		ok, _, cerr := procGetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(&ramp)))
		if ok == 0 {
			return fmt.Errorf("%w: GetDeviceGammaRamp failed: %w", ErrNotAvailable, cerr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return copy(dst, EncodeRamp(&ramp)), nil
}

func (System) OpenProfile(id ID) (ProfileHandle, error) {
	if err := check_display(id); err != nil {
		return nil, err
	}
	var path string
	err := with_screen_dc(func(hdc uintptr) error {
		buf := make([]uint16, windows.MAX_PATH)
		size := uint32(len(buf))
		ok, _, cerr := procGetICMProfileW.Call(hdc, uintptr(unsafe.Pointer(&size)), uintptr(unsafe.Pointer(&buf[0])))
		if ok == 0 {
			return fmt.Errorf("%w: GetICMProfileW failed: %w", ErrNotAvailable, cerr)
		}
		path = windows.UTF16ToString(buf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p, err := LoadProfileFile(path)
	if err != nil {
		return nil, err
	}
	return NewProfileHandle(p), nil
}
