package domain

// HookEvent names a point in the lifecycle where plugin callbacks run.
type HookEvent string

const (
	HookPreCreateEnv       HookEvent = "pre_create_env"
	HookPostCreateEnv      HookEvent = "post_create_env"
	HookPreInstallPackage  HookEvent = "pre_install_package"
	HookPostInstallPackage HookEvent = "post_install_package"
	HookPreBuildPackage    HookEvent = "pre_build_package"
	HookPostBuildPackage   HookEvent = "post_build_package"
	HookPreActivateEnv     HookEvent = "pre_activate_env"
	HookPostActivateEnv    HookEvent = "post_activate_env"
)

// HookEvents lists every supported event.
var HookEvents = []HookEvent{
	HookPreCreateEnv, HookPostCreateEnv,
	HookPreInstallPackage, HookPostInstallPackage,
	HookPreBuildPackage, HookPostBuildPackage,
	HookPreActivateEnv, HookPostActivateEnv,
}

// HookPayload carries event details to callbacks, e.g. "env" and "package".
type HookPayload map[string]any
