//go:build darwin || linux

// Runtime loading of libvlc via purego.

package vlc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func loadVLCLib() error {
	paths := getVLCLibPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			vlcHandle = handle
			registerVLCSymbols()
			registerLibcSymbols()
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return errors.Join(ErrUnavailable, errors.New("libvlc not found in any standard location"))
}

func getVLCLibPaths() []string {
	var paths []string

	libName := "libvlc.so"
	if runtime.GOOS == "darwin" {
		libName = "libvlc.dylib"
	}

	// Environment variable overrides (highest priority)
	if envPath := os.Getenv("VLC_LIB_PATH"); envPath != "" {
		if filepath.Ext(envPath) != "" {
			paths = append(paths, envPath)
		} else {
			paths = append(paths, filepath.Join(envPath, libName))
		}
	}

	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			libName,
			"/Applications/VLC.app/Contents/MacOS/lib/libvlc.dylib",
			"/usr/local/lib/libvlc.dylib",
			"/opt/homebrew/lib/libvlc.dylib",
		)
	case "linux":
		paths = append(paths,
			"libvlc.so.5",
			libName,
			"/usr/lib/libvlc.so.5",
			"/usr/local/lib/libvlc.so.5",
			"/usr/lib/x86_64-linux-gnu/libvlc.so.5",
			"/usr/lib/aarch64-linux-gnu/libvlc.so.5",
		)
	}

	return paths
}

func registerVLCSymbols() {
	purego.RegisterLibFunc(&libvlcNew, vlcHandle, "libvlc_new")
	purego.RegisterLibFunc(&libvlcRelease, vlcHandle, "libvlc_release")
	purego.RegisterLibFunc(&libvlcErrMsg, vlcHandle, "libvlc_errmsg")
	purego.RegisterLibFunc(&libvlcFree, vlcHandle, "libvlc_free")
	purego.RegisterLibFunc(&libvlcGetVersion, vlcHandle, "libvlc_get_version")
	purego.RegisterLibFunc(&libvlcAddIntf, vlcHandle, "libvlc_add_intf")
	purego.RegisterLibFunc(&libvlcSetUserAgent, vlcHandle, "libvlc_set_user_agent")
	purego.RegisterLibFunc(&libvlcSetAppID, vlcHandle, "libvlc_set_app_id")
	purego.RegisterLibFunc(&libvlcSetExitHandler, vlcHandle, "libvlc_set_exit_handler")
	purego.RegisterLibFunc(&libvlcLogSet, vlcHandle, "libvlc_log_set")
	purego.RegisterLibFunc(&libvlcLogUnset, vlcHandle, "libvlc_log_unset")

	purego.RegisterLibFunc(&libvlcAudioFilterListGet, vlcHandle, "libvlc_audio_filter_list_get")
	purego.RegisterLibFunc(&libvlcVideoFilterListGet, vlcHandle, "libvlc_video_filter_list_get")
	purego.RegisterLibFunc(&libvlcModuleDescriptionListRelease, vlcHandle, "libvlc_module_description_list_release")
	purego.RegisterLibFunc(&libvlcAudioOutputListGet, vlcHandle, "libvlc_audio_output_list_get")
	purego.RegisterLibFunc(&libvlcAudioOutputListRelease, vlcHandle, "libvlc_audio_output_list_release")
	purego.RegisterLibFunc(&libvlcAudioOutputDeviceListGet, vlcHandle, "libvlc_audio_output_device_list_get")
	purego.RegisterLibFunc(&libvlcAudioOutputDeviceListRelease, vlcHandle, "libvlc_audio_output_device_list_release")

	purego.RegisterLibFunc(&libvlcMediaNewPath, vlcHandle, "libvlc_media_new_path")
	purego.RegisterLibFunc(&libvlcMediaNewLocation, vlcHandle, "libvlc_media_new_location")
	purego.RegisterLibFunc(&libvlcMediaNewAsNode, vlcHandle, "libvlc_media_new_as_node")
	purego.RegisterLibFunc(&libvlcMediaNewFD, vlcHandle, "libvlc_media_new_fd")
	purego.RegisterLibFunc(&libvlcMediaRelease, vlcHandle, "libvlc_media_release")
	purego.RegisterLibFunc(&libvlcMediaRetain, vlcHandle, "libvlc_media_retain")
	purego.RegisterLibFunc(&libvlcMediaDuplicate, vlcHandle, "libvlc_media_duplicate")
	purego.RegisterLibFunc(&libvlcMediaAddOption, vlcHandle, "libvlc_media_add_option")
	purego.RegisterLibFunc(&libvlcMediaAddOptionFlag, vlcHandle, "libvlc_media_add_option_flag")
	purego.RegisterLibFunc(&libvlcMediaGetMRL, vlcHandle, "libvlc_media_get_mrl")
	purego.RegisterLibFunc(&libvlcMediaGetMeta, vlcHandle, "libvlc_media_get_meta")
	purego.RegisterLibFunc(&libvlcMediaSetMeta, vlcHandle, "libvlc_media_set_meta")
	purego.RegisterLibFunc(&libvlcMediaSaveMeta, vlcHandle, "libvlc_media_save_meta")
	purego.RegisterLibFunc(&libvlcMediaGetState, vlcHandle, "libvlc_media_get_state")
	purego.RegisterLibFunc(&libvlcMediaGetStats, vlcHandle, "libvlc_media_get_stats")
	purego.RegisterLibFunc(&libvlcMediaGetDuration, vlcHandle, "libvlc_media_get_duration")
	purego.RegisterLibFunc(&libvlcMediaParse, vlcHandle, "libvlc_media_parse")
	purego.RegisterLibFunc(&libvlcMediaParseAsync, vlcHandle, "libvlc_media_parse_async")
	purego.RegisterLibFunc(&libvlcMediaIsParsed, vlcHandle, "libvlc_media_is_parsed")
	purego.RegisterLibFunc(&libvlcMediaSetUserData, vlcHandle, "libvlc_media_set_user_data")
	purego.RegisterLibFunc(&libvlcMediaGetUserData, vlcHandle, "libvlc_media_get_user_data")
	purego.RegisterLibFunc(&libvlcMediaTracksGet, vlcHandle, "libvlc_media_tracks_get")
	purego.RegisterLibFunc(&libvlcMediaTracksRelease, vlcHandle, "libvlc_media_tracks_release")
	purego.RegisterLibFunc(&libvlcMediaEventManager, vlcHandle, "libvlc_media_event_manager")

	purego.RegisterLibFunc(&libvlcMediaListNew, vlcHandle, "libvlc_media_list_new")
	purego.RegisterLibFunc(&libvlcMediaListRelease, vlcHandle, "libvlc_media_list_release")
	purego.RegisterLibFunc(&libvlcMediaListAddMedia, vlcHandle, "libvlc_media_list_add_media")
	purego.RegisterLibFunc(&libvlcMediaListInsertMedia, vlcHandle, "libvlc_media_list_insert_media")
	purego.RegisterLibFunc(&libvlcMediaListRemoveIndex, vlcHandle, "libvlc_media_list_remove_index")
	purego.RegisterLibFunc(&libvlcMediaListCount, vlcHandle, "libvlc_media_list_count")
	purego.RegisterLibFunc(&libvlcMediaListItemAtIndex, vlcHandle, "libvlc_media_list_item_at_index")
	purego.RegisterLibFunc(&libvlcMediaListMedia, vlcHandle, "libvlc_media_list_media")
	purego.RegisterLibFunc(&libvlcMediaListIsReadonly, vlcHandle, "libvlc_media_list_is_readonly")
	purego.RegisterLibFunc(&libvlcMediaListLock, vlcHandle, "libvlc_media_list_lock")
	purego.RegisterLibFunc(&libvlcMediaListUnlock, vlcHandle, "libvlc_media_list_unlock")
	purego.RegisterLibFunc(&libvlcMediaListEventManager, vlcHandle, "libvlc_media_list_event_manager")

	purego.RegisterLibFunc(&libvlcMediaPlayerNew, vlcHandle, "libvlc_media_player_new")
	purego.RegisterLibFunc(&libvlcMediaPlayerNewFromMedia, vlcHandle, "libvlc_media_player_new_from_media")
	purego.RegisterLibFunc(&libvlcMediaPlayerRelease, vlcHandle, "libvlc_media_player_release")
	purego.RegisterLibFunc(&libvlcMediaPlayerSetMedia, vlcHandle, "libvlc_media_player_set_media")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetMedia, vlcHandle, "libvlc_media_player_get_media")
	purego.RegisterLibFunc(&libvlcMediaPlayerPlay, vlcHandle, "libvlc_media_player_play")
	purego.RegisterLibFunc(&libvlcMediaPlayerPause, vlcHandle, "libvlc_media_player_pause")
	purego.RegisterLibFunc(&libvlcMediaPlayerSetPause, vlcHandle, "libvlc_media_player_set_pause")
	purego.RegisterLibFunc(&libvlcMediaPlayerStop, vlcHandle, "libvlc_media_player_stop")
	purego.RegisterLibFunc(&libvlcMediaPlayerIsPlaying, vlcHandle, "libvlc_media_player_is_playing")
	purego.RegisterLibFunc(&libvlcMediaPlayerWillPlay, vlcHandle, "libvlc_media_player_will_play")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetState, vlcHandle, "libvlc_media_player_get_state")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetLength, vlcHandle, "libvlc_media_player_get_length")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetTime, vlcHandle, "libvlc_media_player_get_time")
	purego.RegisterLibFunc(&libvlcMediaPlayerSetTime, vlcHandle, "libvlc_media_player_set_time")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetPosition, vlcHandle, "libvlc_media_player_get_position")
	purego.RegisterLibFunc(&libvlcMediaPlayerSetPosition, vlcHandle, "libvlc_media_player_set_position")
	purego.RegisterLibFunc(&libvlcMediaPlayerGetRate, vlcHandle, "libvlc_media_player_get_rate")
	purego.RegisterLibFunc(&libvlcMediaPlayerSetRate, vlcHandle, "libvlc_media_player_set_rate")
	purego.RegisterLibFunc(&libvlcMediaPlayerEventManager, vlcHandle, "libvlc_media_player_event_manager")
	purego.RegisterLibFunc(&libvlcAudioGetVolume, vlcHandle, "libvlc_audio_get_volume")
	purego.RegisterLibFunc(&libvlcAudioSetVolume, vlcHandle, "libvlc_audio_set_volume")
	purego.RegisterLibFunc(&libvlcAudioGetMute, vlcHandle, "libvlc_audio_get_mute")
	purego.RegisterLibFunc(&libvlcAudioSetMute, vlcHandle, "libvlc_audio_set_mute")
	purego.RegisterLibFunc(&libvlcAudioGetTrackDescription, vlcHandle, "libvlc_audio_get_track_description")
	purego.RegisterLibFunc(&libvlcVideoGetTrackDescription, vlcHandle, "libvlc_video_get_track_description")
	purego.RegisterLibFunc(&libvlcVideoGetSpuDescription, vlcHandle, "libvlc_video_get_spu_description")
	purego.RegisterLibFunc(&libvlcTrackDescriptionListRelease, vlcHandle, "libvlc_track_description_list_release")

	purego.RegisterLibFunc(&libvlcMediaDiscovererNew, vlcHandle, "libvlc_media_discoverer_new")
	purego.RegisterLibFunc(&libvlcMediaDiscovererRelease, vlcHandle, "libvlc_media_discoverer_release")
	purego.RegisterLibFunc(&libvlcMediaDiscovererStart, vlcHandle, "libvlc_media_discoverer_start")
	purego.RegisterLibFunc(&libvlcMediaDiscovererStop, vlcHandle, "libvlc_media_discoverer_stop")
	purego.RegisterLibFunc(&libvlcMediaDiscovererLocalizedName, vlcHandle, "libvlc_media_discoverer_localized_name")
	purego.RegisterLibFunc(&libvlcMediaDiscovererIsRunning, vlcHandle, "libvlc_media_discoverer_is_running")
	purego.RegisterLibFunc(&libvlcMediaDiscovererEventManager, vlcHandle, "libvlc_media_discoverer_event_manager")
	purego.RegisterLibFunc(&libvlcMediaDiscovererMediaList, vlcHandle, "libvlc_media_discoverer_media_list")

	purego.RegisterLibFunc(&libvlcEventAttach, vlcHandle, "libvlc_event_attach")
	purego.RegisterLibFunc(&libvlcEventDetach, vlcHandle, "libvlc_event_detach")
}

// registerLibcSymbols binds vsnprintf for log message formatting. The symbol
// is resolved from the process image; formatting degrades to the raw format
// string when it cannot be bound.
func registerLibcSymbols() {
	defer func() {
		if recover() != nil {
			cVsnprintf = nil
		}
	}()
	purego.RegisterLibFunc(&cVsnprintf, purego.RTLD_DEFAULT, "vsnprintf")
}
