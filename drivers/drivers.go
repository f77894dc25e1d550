package drivers

import "github.com/akmonengine/camrig"

var (
	_ camrig.Driver = (*Position)(nil)
	_ camrig.Driver = (*Positional)(nil)
	_ camrig.Driver = (*Rotation)(nil)
	_ camrig.Driver = (*Arm)(nil)
	_ camrig.Driver = (*YawPitch)(nil)
	_ camrig.Driver = (*LookAt)(nil)
	_ camrig.Driver = (*Smooth)(nil)
	_ camrig.Driver = (*LockPosition)(nil)
	_ camrig.Driver = (*LockRotation)(nil)
	_ camrig.Driver = (*Nested)(nil)
)
