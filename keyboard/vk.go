package keyboard

// Windows virtual-key codes. Hook backends report raw codes in this space.
const (
	VKBack       = 0x08
	VKTab        = 0x09
	VKClear      = 0x0C
	VKReturn     = 0x0D
	VKShift      = 0x10
	VKControl    = 0x11
	VKMenu       = 0x12
	VKPause      = 0x13
	VKCapital    = 0x14
	VKKana       = 0x15
	VKJunja      = 0x17
	VKFinal      = 0x18
	VKHanja      = 0x19
	VKEscape     = 0x1B
	VKConvert    = 0x1C
	VKNonConvert = 0x1D
	VKAccept     = 0x1E
	VKModeChange = 0x1F
	VKSpace      = 0x20
	VKPrior      = 0x21
	VKNext       = 0x22
	VKEnd        = 0x23
	VKHome       = 0x24
	VKLeft       = 0x25
	VKUp         = 0x26
	VKRight      = 0x27
	VKDown       = 0x28
	VKSelect     = 0x29
	VKPrint      = 0x2A
	VKExecute    = 0x2B
	VKSnapshot   = 0x2C
	VKInsert     = 0x2D
	VKDelete     = 0x2E
	VKHelp       = 0x2F

	VK0 = 0x30
	VK1 = 0x31
	VK2 = 0x32
	VK3 = 0x33
	VK4 = 0x34
	VK5 = 0x35
	VK6 = 0x36
	VK7 = 0x37
	VK8 = 0x38
	VK9 = 0x39

	VKA = 0x41
	VKZ = 0x5A

	VKLWin  = 0x5B
	VKRWin  = 0x5C
	VKApps  = 0x5D
	VKSleep = 0x5F

	VKNumpad0   = 0x60
	VKNumpad9   = 0x69
	VKMultiply  = 0x6A
	VKAdd       = 0x6B
	VKSeparator = 0x6C
	VKSubtract  = 0x6D
	VKDecimal   = 0x6E
	VKDivide    = 0x6F

	VKF1  = 0x70
	VKF24 = 0x87

	VKNumLock = 0x90
	VKScroll  = 0x91

	VKLShift   = 0xA0
	VKRShift   = 0xA1
	VKLControl = 0xA2
	VKRControl = 0xA3
	VKLMenu    = 0xA4
	VKRMenu    = 0xA5

	VKBrowserBack       = 0xA6
	VKBrowserForward    = 0xA7
	VKBrowserRefresh    = 0xA8
	VKBrowserStop       = 0xA9
	VKBrowserSearch     = 0xAA
	VKBrowserFavorites  = 0xAB
	VKBrowserHome       = 0xAC
	VKVolumeMute        = 0xAD
	VKVolumeDown        = 0xAE
	VKVolumeUp          = 0xAF
	VKMediaNextTrack    = 0xB0
	VKMediaPrevTrack    = 0xB1
	VKMediaStop         = 0xB2
	VKMediaPlayPause    = 0xB3
	VKLaunchMail        = 0xB4
	VKLaunchMediaSelect = 0xB5
	VKLaunchApp1        = 0xB6
	VKLaunchApp2        = 0xB7

	VKOEM1      = 0xBA
	VKOEMPlus   = 0xBB
	VKOEMComma  = 0xBC
	VKOEMMinus  = 0xBD
	VKOEMPeriod = 0xBE
	VKOEM2      = 0xBF
	VKOEM3      = 0xC0
	VKABNTC1    = 0xC1
	VKOEM4      = 0xDB
	VKOEM5      = 0xDC
	VKOEM6      = 0xDD
	VKOEM7      = 0xDE
	VKOEM8      = 0xDF
	VKOEM102    = 0xE2

	VKProcessKey = 0xE5
	VKPacket     = 0xE7
	VKAttn       = 0xF6
	VKCrSel      = 0xF7
	VKExSel      = 0xF8
	VKErEOF      = 0xF9
	VKPlay       = 0xFA
	VKZoom       = 0xFB
	VKNoName     = 0xFC
	VKPA1        = 0xFD
	VKOEMClear   = 0xFE
)
