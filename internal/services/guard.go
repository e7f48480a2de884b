package service

import "strings"

const (
	AuthGroup     = "auth"
	SignInRoute   = "/auth/sign-in"
	TabsHomeRoute = "/(tabs)"
)

// RouteSegments splits an app route such as "/(tabs)/search" into its segments.
func RouteSegments(route string) []string {
	var segments []string
	for _, s := range strings.Split(route, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}

// Redirect is the app's route guard. It returns the route to replace the
// current one with, or "" when the navigation may proceed.
func Redirect(segments []string, authenticated bool) string {
	inAuthGroup := len(segments) > 0 && segments[0] == AuthGroup

	switch {
	case !authenticated && !inAuthGroup:
		return SignInRoute
	case authenticated && inAuthGroup:
		return TabsHomeRoute
	default:
		return ""
	}
}
