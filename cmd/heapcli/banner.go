package main

const banner = `
  _       _   _
 (_)_ __ | |_| |__   ___  __ _ _ __
 | | '_ \| __| '_ \ / _ \/ _' | '_ \
 | | | | | |_| | | |  __/ (_| | |_) |
 |_|_| |_|\__|_| |_|\___|\__,_| .__/
                              |_|
`
