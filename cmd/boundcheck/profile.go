// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package main

import (
	"maps"
	"os"
	"slices"

	"github.com/korrel8r/boundcheck/internal/pkg/enumflag"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

const (
	profileEnv     = "BOUNDCHECK_PROFILE"
	profilePathEnv = "BOUNDCHECK_PROFILE_PATH"
)

var (
	profileTypes = map[string]func(*profile.Profile){
		"block":     profile.BlockProfile,
		"cpu":       profile.CPUProfile,
		"goroutine": profile.GoroutineProfile,
		"mem":       profile.MemProfile,
		"alloc":     profile.MemProfileAllocs,
		"heap":      profile.MemProfileHeap,
		"mutex":     profile.MutexProfile,
		"clock":     profile.ClockProfile,
		"trace":     profile.TraceProfile,
	}
	profileTypeFlag = enumflag.New(os.Getenv(profileEnv), slices.Sorted(maps.Keys(profileTypes))...)
	profilePathFlag = rootCmd.PersistentFlags().String("profilePath", os.Getenv(profilePathEnv), "Output path for profile")
)

func init() {
	rootCmd.PersistentFlags().Var(profileTypeFlag, "profile", profileTypeFlag.DocString("Enable profiling"))
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) { profiler = StartProfile() }
}

// profiler is stopped in main, which runs on success and on failure.
var profiler interface{ Stop() } = noopStop{}

type noopStop struct{}

func (noopStop) Stop() {}

// StartProfile starts the profile selected by --profile, if any.
func StartProfile() interface{ Stop() } {
	if opt, ok := profileTypes[profileTypeFlag.String()]; ok {
		if *profilePathFlag == "" {
			*profilePathFlag = "."
		}
		log.V(1).Info("profiling", "type", profileTypeFlag.String(), "path", *profilePathFlag)
		return profile.Start(profile.ProfilePath(*profilePathFlag), opt, profile.Quiet)
	}
	return noopStop{}
}
