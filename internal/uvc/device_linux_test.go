//go:build linux && amd64

// internal/uvc/device_linux_test.go
package uvc

import "testing"

// Request numbers as the kernel headers compute them on amd64.
func TestIoctlNumbers(t *testing.T) {
	cases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"UVCIOC_CTRL_MAP", uvciocCtrlMap, 0xc0607520},
		{"UVCIOC_CTRL_QUERY", uvciocCtrlQuery, 0xc0107521},
		{"VIDIOC_G_CTRL", vidiocGCtrl, 0xc008561b},
		{"VIDIOC_S_CTRL", vidiocSCtrl, 0xc008561c},
		{"VIDIOC_QUERYCTRL", vidiocQueryCtrl, 0xc0445624},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got=0x%08x want=0x%08x", tc.name, tc.got, tc.want)
		}
	}
}

func TestOpen_MissingNode(t *testing.T) {
	if _, err := Open("/dev/does-not-exist-video"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
