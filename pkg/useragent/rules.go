package useragent

// DefaultRules returns the built-in rule set. Rule order is significant:
// specific signatures come before generic fallbacks, and reordering changes
// the outcome for ambiguous user agents.
//
// A fresh copy is returned on every call so callers may extend or filter it
// before passing it to NewTable.
func DefaultRules() []CategoryRules {
	return []CategoryRules{
		{Category: CategoryBrowser, Rules: browserRules()},
		{Category: CategoryCPU, Rules: cpuRules()},
		{Category: CategoryDevice, Rules: deviceRules()},
		{Category: CategoryEngine, Rules: engineRules()},
		{Category: CategoryOS, Rules: osRules()},
	}
}

func browserRules() []Rule {
	name := Capture(FieldBrowserName)
	version := Capture(FieldBrowserVersion)
	named := func(n string) Extractor { return Literal(FieldBrowserName, n) }

	return []Rule{
		{
			// Presto based
			Patterns: []string{
				`(opera\smini)\/([\w\.-]+)`,                  // Opera Mini
				`(opera\s[mobiletab]+).+version\/([\w\.-]+)`, // Opera Mobi/Tablet
				`(opera).+version\/([\w\.]+)`,                // Opera > 9.80
				`(opera)[\/\s]+([\w\.]+)`,                    // Opera < 9.80
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`\s(opr)\/([\w\.]+)`}, // Opera Webkit
			Extractors: []Extractor{named("Opera"), version},
		},
		{
			Patterns: []string{
				// Mixed
				`(kindle)\/([\w\.]+)`,
				`(lunascape|maxthon|netfront|jasmine|blazer)[\/\s]?([\w\.]+)*`,
				// Trident based
				`(avant\s|iemobile|slim|baidu)(?:browser)?[\/\s]?([\w\.]*)`,
				`(?:ms|\()(ie)\s([\w\.]+)`,
				// Webkit/KHTML based
				`(rekonq)\/([\w\.]+)*`,
				`(chromium|flock|rockmelt|midori|epiphany|silk|skyfire|ovibrowser|bolt|iron|vivaldi|iridium)\/([\w\.-]+)`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`(trident).+rv[:\s]([\w\.]+).+like\sgecko`}, // IE11
			Extractors: []Extractor{named("IE"), version},
		},
		{
			Patterns:   []string{`(edge)\/((\d+)?[\w\.]+)`},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`(yabrowser)\/([\w\.]+)`},
			Extractors: []Extractor{named("Yandex"), version},
		},
		{
			Patterns:   []string{`(comodo_dragon)\/([\w\.]+)`},
			Extractors: []Extractor{Transform(FieldBrowserName, Replace('_', ' ')), version},
		},
		{
			Patterns: []string{
				`(chrome|omniweb|arora|[tizenoka]{5}\s?browser)\/v?([\w\.]+)`, // Chrome/OmniWeb/Arora/Tizen/Nokia
				`(qqbrowser)[\/\s]?([\w\.]+)`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns: []string{
				`(uc\s?browser)[\/\s]?([\w\.]+)`,
				`ucweb.+(ucbrowser)[\/\s]?([\w\.]+)`,
				`JUC.+(ucweb)[\/\s]?([\w\.]+)`,
			},
			Extractors: []Extractor{named("UCBrowser"), version},
		},
		{
			Patterns:   []string{`(dolfin)\/([\w\.]+)`},
			Extractors: []Extractor{named("Dolphin"), version},
		},
		{
			Patterns:   []string{`((?:android.+)crmo|crios)\/([\w\.]+)`}, // Chrome for Android/iOS
			Extractors: []Extractor{named("Chrome"), version},
		},
		{
			Patterns:   []string{`XiaoMi\/MiuiBrowser\/([\w\.]+)`},
			Extractors: []Extractor{version, named("MIUI Browser")},
		},
		{
			Patterns:   []string{`android.+version\/([\w\.]+)\s+(?:mobile\s?safari|safari)`},
			Extractors: []Extractor{version, named("Android Browser")},
		},
		{
			Patterns:   []string{`FBAV\/([\w\.]+);`}, // Facebook App for iOS
			Extractors: []Extractor{version, named("Facebook")},
		},
		{
			Patterns:   []string{`version\/([\w\.]+).+?mobile\/\w+\s(safari)`},
			Extractors: []Extractor{version, named("Mobile Safari")},
		},
		{
			Patterns:   []string{`version\/([\w\.]+).+?(mobile\s?safari|safari)`},
			Extractors: []Extractor{version, name},
		},
		{
			// Safari < 3.0 only reports the WebKit build
			Patterns:   []string{`webkit.+?(mobile\s?safari|safari)(\/[\w\.]+)`},
			Extractors: []Extractor{name, Transform(FieldBrowserVersion, Lookup(safariVersions))},
		},
		{
			Patterns: []string{
				`(konqueror)\/([\w\.]+)`,
				`(webkit|khtml)\/([\w\.]+)`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			// Gecko based
			Patterns:   []string{`(navigator|netscape)\/([\w\.-]+)`},
			Extractors: []Extractor{named("Netscape"), version},
		},
		{
			Patterns:   []string{`fxios\/([\w\.-]+)`}, // Firefox for iOS
			Extractors: []Extractor{version, named("Firefox")},
		},
		{
			Patterns: []string{
				`(swiftfox)`,
				`(icedragon|iceweasel|camino|chimera|fennec|maemo\sbrowser|minimo|conkeror)[\/\s]?([\w\.\+]+)`,
				`(firefox|seamonkey|k-meleon|icecat|iceape|firebird|phoenix)\/([\w\.-]+)`,
				`(mozilla)\/([\w\.]+).+rv\:.+gecko\/\d+`,
				// Other
				`(polaris|lynx|dillo|icab|doris|amaya|w3m|netsurf)[\/\s]?([\w\.]+)`,
				`(links)\s\(([\w\.]+)`,
				`(gobrowser)\/?([\w\.]+)*`,
				`(ice\s?browser)\/v?([\w\._]+)`,
				`(mosaic)[\/\s]([\w\.]+)`,
			},
			Extractors: []Extractor{name, version},
		},
	}
}

func cpuRules() []Rule {
	arch := func(a string) Extractor { return Literal(FieldCPUArchitecture, a) }
	lowered := Transform(FieldCPUArchitecture, Lowercase())

	return []Rule{
		{
			Patterns:   []string{`(?:(amd|x(?:(?:86|64)[_-])?|wow|win)64)[;\)]`},
			Extractors: []Extractor{arch("amd64")},
		},
		{
			Patterns:   []string{`(ia32(?=;))`}, // IA32 (quicktime)
			Extractors: []Extractor{lowered},
		},
		{
			Patterns:   []string{`((?:i[346]|x)86)[;\)]`},
			Extractors: []Extractor{arch("ia32")},
		},
		{
			// PocketPC mistakenly identified as PowerPC
			Patterns:   []string{`windows\s(ce|mobile);\sppc;`},
			Extractors: []Extractor{arch("arm")},
		},
		{
			Patterns:   []string{`((?:ppc|powerpc)(?:64)?)(?:\smac|;|\))`},
			Extractors: []Extractor{lowered},
		},
		{
			Patterns:   []string{`(sun4\w)[;\)]`},
			Extractors: []Extractor{arch("sparc")},
		},
		{
			// IA64, 68K, ARM/64, AVR/32, IRIX/64, MIPS/64, SPARC/64, PA-RISC
			Patterns:   []string{`((?:avr32|ia64(?=;))|68k(?=\))|arm(?:64|(?=v\d+;))|(?=atmel\s)avr|(?:irix|mips|sparc)(?:64)?(?=;)|pa-risc)`},
			Extractors: []Extractor{lowered},
		},
	}
}

func deviceRules() []Rule {
	model := Capture(FieldDeviceModel)
	vendor := Capture(FieldDeviceVendor)
	modelIs := func(m string) Extractor { return Literal(FieldDeviceModel, m) }
	vendorIs := func(v string) Extractor { return Literal(FieldDeviceVendor, v) }
	typeIs := func(t string) Extractor { return Literal(FieldDeviceType, t) }

	return []Rule{
		{
			Patterns:   []string{`\((ipad|playbook);[\w\s\);-]+(rim|apple)`},
			Extractors: []Extractor{model, vendor, typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`applecoremedia\/[\w\.]+ \((ipad)`},
			Extractors: []Extractor{model, vendorIs("Apple"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`(apple\s{0,1}tv)`},
			Extractors: []Extractor{modelIs("Apple TV"), vendorIs("Apple")},
		},
		{
			Patterns: []string{
				`(archos)\s(gamepad2?)`,
				`(hp).+(touchpad)`,
				`(kindle)\/([\w\.]+)`,
				`\s(nook)[\w\s]+build\/(\w+)`,
				`(dell)\s(strea[kpr\s\d]*[\dko])`,
			},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`(kf[A-z]+)\sbuild\/[\w\.]+.*silk\/`}, // Kindle Fire HD
			Extractors: []Extractor{model, vendorIs("Amazon"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`(sd|kf)[0349hijorstuw]+\sbuild\/[\w\.]+.*silk\/`}, // Fire Phone
			Extractors: []Extractor{Transform(FieldDeviceModel, Lookup(amazonModels)), vendorIs("Amazon"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`\((ip[honed|\s\w*]+);.+(apple)`},
			Extractors: []Extractor{model, vendor, typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`\((ip[honed|\s\w*]+);`},
			Extractors: []Extractor{model, vendorIs("Apple"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns: []string{
				`(blackberry)[\s-]?(\w+)`,
				`(blackberry|benq|palm(?=\-)|sonyericsson|acer|asus|dell|huawei|meizu|motorola|polytron)[\s_-]?([\w-]+)*`,
				`(hp)\s([\w\s]+\w)`, // HP iPAQ
				`(asus)-?(\w+)`,
			},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`\(bb10;\s(\w+)`},
			Extractors: []Extractor{model, vendorIs("BlackBerry"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`android.+(transfo[prime\s]{4,10}\s\w+|eeepc|slider\s\w+|nexus 7)`},
			Extractors: []Extractor{model, vendorIs("Asus"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns: []string{
				`(sony)\s(tablet\s[ps])\sbuild\/`,
				`(sony)?(?:sgp.+)\sbuild\/`,
			},
			Extractors: []Extractor{vendorIs("Sony"), modelIs("Xperia Tablet"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`(?:sony)?(?:(?:(?:c|d)\d{4})|(?:so[-l].+))\sbuild\/`},
			Extractors: []Extractor{vendorIs("Sony"), modelIs("Xperia Phone"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns: []string{
				`\s(ouya)\s`,
				`(nintendo)\s([wids3u]+)`,
			},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeConsole)},
		},
		{
			Patterns:   []string{`android.+;\s(shield)\sbuild`},
			Extractors: []Extractor{model, vendorIs("Nvidia"), typeIs(DeviceTypeConsole)},
		},
		{
			Patterns:   []string{`(playstation\s[3portablevi]+)`},
			Extractors: []Extractor{model, vendorIs("Sony"), typeIs(DeviceTypeConsole)},
		},
		{
			Patterns: []string{`(sprint\s(\w+))`},
			Extractors: []Extractor{
				Transform(FieldDeviceVendor, Lookup(sprintVendors)),
				Transform(FieldDeviceModel, Lookup(sprintModels)),
				typeIs(DeviceTypeMobile),
			},
		},
		{
			Patterns:   []string{`(lenovo)\s?(S(?:5000|6000)+(?:[-][\w+]))`},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeTablet)},
		},
		{
			Patterns: []string{
				`(htc)[;_\s-]+([\w\s]+(?=\))|\w+)*`,
				`(zte)-(\w+)*`,
				`(alcatel|geeksphone|huawei|lenovo|nexian|panasonic|(?=;\s)sony)[_\s-]?([\w-]+)*`,
			},
			Extractors: []Extractor{vendor, Transform(FieldDeviceModel, Replace('_', ' ')), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`(nexus\s9)`},
			Extractors: []Extractor{model, vendorIs("HTC"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`[\s\(;](xbox(?:\sone)?)[\s\);]`},
			Extractors: []Extractor{model, vendorIs("Microsoft"), typeIs(DeviceTypeConsole)},
		},
		{
			Patterns:   []string{`(kin\.[onetw]{3})`},
			Extractors: []Extractor{Transform(FieldDeviceModel, Replace('.', ' ')), vendorIs("Microsoft"), typeIs(DeviceTypeMobile)},
		},
		{
			// Motorola
			Patterns: []string{
				`\s(milestone|droid(?:[2-4x]|\s(?:bionic|x2|pro|razr))?(:?\s4g)?)[\w\s]+build\/`,
				`mot[\s-]?(\w+)*`,
				`(XT\d{3,4}) build\/`,
				`(nexus\s[6])`,
			},
			Extractors: []Extractor{model, vendorIs("Motorola"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`android.+\s(mz60\d|xoom[\s2]{0,2})\sbuild\/`},
			Extractors: []Extractor{model, vendorIs("Motorola"), typeIs(DeviceTypeTablet)},
		},
		{
			// Samsung tablets
			Patterns: []string{
				`android.+((sch-i[89]0\d|shw-m380s|gt-p\d{4}|gt-n8000|sgh-t8[56]9|nexus 10))`,
				`((SM-T\w+))`,
			},
			Extractors: []Extractor{vendorIs("Samsung"), model, typeIs(DeviceTypeTablet)},
		},
		{
			Patterns: []string{
				`((s[cgp]h-\w+|gt-\w+|galaxy\snexus|sm-n900))`,
				`(sam[sung]*)[\s-]*(\w+-?[\w-]*)*`,
				`sec-((sgh\w+))`,
			},
			Extractors: []Extractor{vendorIs("Samsung"), model, typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`(samsung);smarttv`},
			Extractors: []Extractor{model, vendor, typeIs(DeviceTypeSmartTV)},
		},
		{
			Patterns:   []string{`\(dtv[\);].+(aquos)`}, // Sharp
			Extractors: []Extractor{model, vendorIs("Sharp"), typeIs(DeviceTypeSmartTV)},
		},
		{
			Patterns:   []string{`sie-(\w+)*`}, // Siemens
			Extractors: []Extractor{model, vendorIs("Siemens"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns: []string{
				`(maemo|nokia).*(n900|lumia\s\d+)`,
				`(nokia)[\s_-]?([\w-]+)*`,
			},
			Extractors: []Extractor{vendorIs("Nokia"), model, typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`android\s3\.[\s\w;-]{10}(a\d{3})`}, // Acer
			Extractors: []Extractor{model, vendorIs("Acer"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`android\s3\.[\s\w;-]{10}(lg?)-([06cv9]{3,4})`}, // LG tablet
			Extractors: []Extractor{vendorIs("LG"), model, typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`(lg) netcast\.tv`},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeSmartTV)},
		},
		{
			Patterns: []string{
				`(nexus\s[456])`,
				`lg[e;\s\/-]+(\w+)*`,
			},
			Extractors: []Extractor{model, vendorIs("LG"), typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`android.+(ideatab[a-z0-9\-\s]+)`},
			Extractors: []Extractor{model, vendorIs("Lenovo"), typeIs(DeviceTypeTablet)},
		},
		{
			Patterns:   []string{`linux;.+((jolla));`},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeMobile)},
		},
		{
			Patterns:   []string{`((pebble))app\/[\d\.]+\s`},
			Extractors: []Extractor{vendor, model, typeIs(DeviceTypeWearable)},
		},
		{
			Patterns:   []string{`android.+;\s(glass)\s\d`},
			Extractors: []Extractor{model, vendorIs("Google"), typeIs(DeviceTypeWearable)},
		},
		{
			// Xiaomi; the first pattern catches numeric Hongmi models via backreference
			Patterns: []string{
				`android.+(\w+)\s+build\/hm\1`,
				`android.+(hm[\s\-_]*note?[\s_]*(?:\d\w)?)\s+build`,
				`android.+(mi[\s\-_]*(?:one|one[\s_]plus)?[\s_]*(?:\d\w)?)\s+build`,
			},
			Extractors: []Extractor{Transform(FieldDeviceModel, Replace('_', ' ')), vendorIs("Xiaomi"), typeIs(DeviceTypeMobile)},
		},
		{
			// Unidentifiable Gecko phones and tablets
			Patterns: []string{`(mobile|tablet);.+rv\:.+gecko\/`},
			Extractors: []Extractor{
				Transform(FieldDeviceType, Lowercase()),
				vendorIs(""),
				modelIs(""),
			},
		},
	}
}

func engineRules() []Rule {
	name := Capture(FieldEngineName)
	version := Capture(FieldEngineVersion)

	return []Rule{
		{
			Patterns:   []string{`windows.+\sedge\/([\w\.]+)`},
			Extractors: []Extractor{version, Literal(FieldEngineName, "EdgeHTML")},
		},
		{
			Patterns: []string{
				`(presto)\/([\w\.]+)`,
				`(webkit|trident|netfront|netsurf|amaya|lynx|w3m)\/([\w\.]+)`,
				`(khtml|tasman|links)[\/\s]\(?([\w\.]+)`,
				`(icab)[\/\s]([23]\.[\d\.]+)`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`rv\:([\w\.]+).*(gecko)`},
			Extractors: []Extractor{version, name},
		},
	}
}

func osRules() []Rule {
	name := Capture(FieldOSName)
	version := Capture(FieldOSVersion)
	named := func(n string) Extractor { return Literal(FieldOSName, n) }
	windowsVersion := Transform(FieldOSVersion, Lookup(windowsVersions))
	dotted := Transform(FieldOSVersion, Replace('_', '.'))

	return []Rule{
		{
			Patterns:   []string{`microsoft\s(windows)\s(vista|xp)`}, // Windows (iTunes)
			Extractors: []Extractor{name, version},
		},
		{
			Patterns: []string{
				`(windows)\snt\s6\.2;\s(arm)`, // Windows RT
				`(windows\sphone(?:\sos)*|windows\smobile|windows)[\s\/]?([ntce\d\.\s]+\w)`,
			},
			Extractors: []Extractor{name, windowsVersion},
		},
		{
			Patterns:   []string{`(win(?=3|9|n)|win\s9x\s)([nt\d\.]+)`},
			Extractors: []Extractor{named("Windows"), windowsVersion},
		},
		{
			Patterns:   []string{`\((bb)(10);`},
			Extractors: []Extractor{named("BlackBerry"), version},
		},
		{
			Patterns: []string{
				`(blackberry)\w*\/?([\w\.]+)*`,
				`(tizen)[\/\s]([\w\.]+)`,
				`(android|webos|palm\sos|qnx|bada|rim\stablet\sos|meego|contiki)[\/\s-]?([\w\.]+)*`,
				`linux;.+(sailfish);`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`(symbian\s?os|symbos|s60(?=;))[\/\s-]?([\w\.]+)*`},
			Extractors: []Extractor{named("Symbian"), version},
		},
		{
			Patterns:   []string{`\((series40);`},
			Extractors: []Extractor{name},
		},
		{
			Patterns:   []string{`mozilla.+\(mobile;.+gecko.+firefox`},
			Extractors: []Extractor{named("Firefox OS"), version},
		},
		{
			Patterns: []string{
				// Console
				`(nintendo|playstation)\s([wids3portablevu]+)`,
				// GNU/Linux based
				`(mint)[\/\s\(]?(\w+)*`,
				`(mageia|vectorlinux)[;\s]`,
				`(joli|[kxln]?ubuntu|debian|[open]*suse|gentoo|arch|slackware|fedora|mandriva|centos|pclinuxos|redhat|zenwalk|linpus)[\/\s-]?([\w\.-]+)*`,
				`(hurd|linux)\s?([\w\.]+)*`,
				`(gnu)\s?([\w\.]+)*`,
			},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`(cros)\s[\w]+\s([\w\.]+\w)`},
			Extractors: []Extractor{named("Chromium OS"), version},
		},
		{
			Patterns:   []string{`(sunos)\s?([\w\.]+\d)*`},
			Extractors: []Extractor{named("Solaris"), version},
		},
		{
			// FreeBSD/NetBSD/OpenBSD/PC-BSD/DragonFly
			Patterns:   []string{`\s([frentopc-]{0,4}bsd|dragonfly)\s?([\w\.]+)*`},
			Extractors: []Extractor{name, version},
		},
		{
			Patterns:   []string{`(ip[honead]+)(?:.*os\s*([\w]+)*\slike\smac|;\sopera)`},
			Extractors: []Extractor{named("iOS"), dotted},
		},
		{
			Patterns: []string{
				`(mac\sos\sx)\s?([\w\s\.]+\w)*`,
				`(macintosh|mac(?=_powerpc)\s)`,
			},
			Extractors: []Extractor{named("Mac OS"), dotted},
		},
		{
			Patterns: []string{
				`((?:open)?solaris)[\/\s-]?([\w\.]+)*`,
				`(haiku)\s(\w+)`,
				`(aix)\s((\d)(?=\.|\)|\s)[\w\.]*)*`,
				`(plan\s9|minix|beos|os\/2|amigaos|morphos|risc\sos|openvms)`,
				`(unix)\s?([\w\.]+)*`,
			},
			Extractors: []Extractor{name, version},
		},
	}
}
