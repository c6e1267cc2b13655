// Package config provides configuration parsing for reakt tools.
//
// Configuration lives in reakt.json, reakt.yaml or reakt.yml in the working
// directory. Missing fields keep their defaults.
//
// # Configuration File Structure
//
//	{
//	  "runtime": {
//	    "hookOrderCheck": true,
//	    "falsyAsUnset": false
//	  },
//	  "inspector": {
//	    "addr": ":7070"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "reakt"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "demo": {
//	    "clicks": 3,
//	    "title": "Hello Reakt Header"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Inspector:", cfg.Inspector.Addr)
package config
