package repodata

// Channel enumerates the publishing channels available on repo.anaconda.com.
type Channel string

const (
	ChannelMain       Channel = "main"
	ChannelFree       Channel = "free"
	ChannelR          Channel = "r"
	ChannelPro        Channel = "pro"
	ChannelArchive    Channel = "archive"
	ChannelMroArchive Channel = "mro-archive"
	ChannelMsys2      Channel = "msys2"
)

// Architecture enumerates the architecture subdirs available on
// repo.anaconda.com. Some older reference material calls this "subdir".
type Architecture string

const (
	ArchLinux64      Architecture = "linux-64"
	ArchLinux32      Architecture = "linux-32"
	ArchLinuxAarch64 Architecture = "linux-aarch64"
	ArchLinuxArmV6L  Architecture = "linux-armv6l"
	ArchLinuxArmV7L  Architecture = "linux-armv7l"
	ArchLinuxS390    Architecture = "linux-s390x"
	ArchLinuxPpc64le Architecture = "linux-ppc64le"
	ArchOsxArm64     Architecture = "osx-arm64"
	ArchOsx64        Architecture = "osx-64"
	ArchOsx32        Architecture = "osx-32"
	ArchWin64        Architecture = "win-64"
	ArchWin32        Architecture = "win-32"
	ArchNoarch       Architecture = "noarch"
)

var allLinux = []Architecture{
	ArchLinux64, ArchLinux32, ArchLinuxAarch64, ArchLinuxArmV6L,
	ArchLinuxArmV7L, ArchLinuxS390, ArchLinuxPpc64le,
}

// channelArchitectures is the static support table consulted before any
// request is issued: an unsupported channel/architecture pair fails fast
// without touching the network.
var channelArchitectures = map[Channel][]Architecture{
	ChannelMain: append(append([]Architecture{}, allLinux...),
		ArchOsxArm64, ArchOsx64, ArchWin64, ArchWin32, ArchNoarch),
	ChannelFree: append(append([]Architecture{}, allLinux...),
		ArchOsx64, ArchOsx32, ArchWin64, ArchWin32, ArchNoarch),
	ChannelR: append(append([]Architecture{}, allLinux...),
		ArchOsx64, ArchWin64, ArchWin32, ArchNoarch),
	ChannelPro: append(append([]Architecture{}, allLinux...),
		ArchOsx64, ArchWin64, ArchWin32, ArchNoarch),
	ChannelArchive: append(append([]Architecture{}, allLinux...),
		ArchOsx64, ArchOsx32, ArchWin64, ArchWin32, ArchNoarch),
	ChannelMroArchive: {
		ArchLinux64, ArchOsx64, ArchWin64, ArchWin32, ArchNoarch,
	},
	// msys2 ships Windows-only tooling.
	ChannelMsys2: {ArchWin64, ArchWin32, ArchNoarch},
}

// Supports reports whether arch is published for the channel.
func (c Channel) Supports(arch Architecture) bool {
	for _, a := range channelArchitectures[c] {
		if a == arch {
			return true
		}
	}
	return false
}

// known reports whether c is one of the enumerated channels.
func (c Channel) known() bool {
	_, ok := channelArchitectures[c]
	return ok
}
