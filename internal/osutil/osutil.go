package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1
