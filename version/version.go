// version.go
package version

import "fmt"

// AppName holds the name of the application
var AppName = "go-jamfpro-oapi"

// Version holds the current version of the application
var Version = "0.3.0"

// UserAgentBase is the product token sent ahead of the version in User-Agent.
const UserAgentBase = "go-jamfpro-oapi"

// SDKVersion is the version reported in User-Agent.
var SDKVersion = Version

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent value sent with every request.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", UserAgentBase, SDKVersion)
}
