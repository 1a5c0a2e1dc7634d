package quoteparser

// Default word lists for the contractions oracle. Words are stored without
// the apostrophe and lowercased; began-words follow a leading apostrophe
// ('twas), ended-words precede a trailing one (thinkin').

var defaultBeganUnambiguous = []string{
	"aight",
	"allo",
	"bout",
	"bye",
	"cept",
	"cuz",
	"dillo",
	"em",
	"fess",
	"fraid",
	"gainst",
	"kay",
	"mongst",
	"n",
	"neath",
	"nother",
	"nuff",
	"pon",
	"prentice",
	"sblood",
	"scuse",
	"sdeath",
	"sfoot",
	"sheart",
	"slid",
	"slife",
	"slight",
	"snails",
	"spose",
	"stead",
	"strewth",
	"sup",
	"tain",
	"taint",
	"tcha",
	"til",
	"tis",
	"tisn",
	"twas",
	"twasn",
	"tween",
	"twere",
	"tweren",
	"twill",
	"twixt",
	"twon",
	"twould",
	"twouldn",
	"zactly",
	"zounds",
}

// Words that are dialect or clipped forms when following an apostrophe
// ('e, 'ead, 'cause, 'round), but also plausible quoted text on their own.
var defaultBeganAmbiguous = []string{
	"a",
	"cause",
	"e",
	"ead",
	"er",
	"ere",
	"fore",
	"im",
	"less",
	"mid",
	"o",
	"ol",
	"ome",
	"round",
	"s",
	"t",
	"un",
}

var defaultEndedUnambiguous = append([]string{
	"mo",
	"n",
	"o",
	"ol",
	"po",
	"sho",
	"th",
	"wi",
}, droppedGGerunds...)

var defaultEndedAmbiguous = []string{
	"da",
	"de",
	"fo",
	"gi",
	"ma",
	"yo",
}

// Curated -ing words written with a dropped g (comin', thinkin'). The
// oracle's s/z/x/n fallback already catches any -in word; listing the common
// forms here makes them *unambiguously* apostrophes instead of merely
// ambiguous ones.
var droppedGGerunds = []string{
	"accordin",
	"achin",
	"actin",
	"addin",
	"aimin",
	"amblin",
	"answerin",
	"arguin",
	"askin",
	"bakin",
	"barkin",
	"bawlin",
	"beamin",
	"bearin",
	"beatin",
	"beggin",
	"beginnin",
	"behavin",
	"believin",
	"belongin",
	"bendin",
	"bettin",
	"bickerin",
	"bidin",
	"bitin",
	"blamin",
	"blazin",
	"bleedin",
	"blessin",
	"blinkin",
	"bloomin",
	"blowin",
	"blushin",
	"boastin",
	"bobbin",
	"boilin",
	"boomin",
	"borrowin",
	"bossin",
	"botherin",
	"bouncin",
	"bowin",
	"boxin",
	"braggin",
	"breakin",
	"breathin",
	"brewin",
	"bringin",
	"brushin",
	"buildin",
	"bumpin",
	"burnin",
	"burstin",
	"buryin",
	"bustin",
	"buyin",
	"buzzin",
	"callin",
	"calmin",
	"campin",
	"carin",
	"carryin",
	"carvin",
	"catchin",
	"changin",
	"chargin",
	"chasin",
	"chattin",
	"cheatin",
	"checkin",
	"cheerin",
	"chewin",
	"chokin",
	"choppin",
	"claimin",
	"clappin",
	"cleanin",
	"clearin",
	"climbin",
	"clingin",
	"closin",
	"coastin",
	"collectin",
	"comin",
	"commandin",
	"complainin",
	"cookin",
	"coolin",
	"countin",
	"courtin",
	"coverin",
	"crackin",
	"crashin",
	"crawlin",
	"creakin",
	"creepin",
	"crossin",
	"crowdin",
	"cryin",
	"cussin",
	"cuttin",
	"dancin",
	"darin",
	"darlin",
	"dashin",
	"dealin",
	"decidin",
	"diggin",
	"dinin",
	"divin",
	"doin",
	"doubtin",
	"draggin",
	"drawin",
	"dreamin",
	"dressin",
	"driftin",
	"drinkin",
	"drippin",
	"drivin",
	"droppin",
	"drownin",
	"dwellin",
	"dyin",
	"earnin",
	"eatin",
	"expectin",
	"explainin",
	"facin",
	"fadin",
	"failin",
	"fallin",
	"farmin",
	"fearin",
	"feedin",
	"feelin",
	"fetchin",
	"fightin",
	"figurin",
	"fillin",
	"findin",
	"finishin",
	"firin",
	"fishin",
	"fittin",
	"fixin",
	"flamin",
	"flashin",
	"floatin",
	"floppin",
	"flowin",
	"flyin",
	"foldin",
	"followin",
	"foolin",
	"forgettin",
	"forgivin",
	"freezin",
	"frownin",
	"fryin",
	"fussin",
	"gamblin",
	"gatherin",
	"gettin",
	"givin",
	"glancin",
	"glowin",
	"goin",
	"grabbin",
	"grievin",
	"grinnin",
	"groanin",
	"growin",
	"growlin",
	"grumblin",
	"guardin",
	"guessin",
	"guidin",
	"gunnin",
	"handlin",
	"hangin",
	"happenin",
	"hatin",
	"haulin",
	"havin",
	"headin",
	"healin",
	"hearin",
	"heatin",
	"helpin",
	"hidin",
	"hirin",
	"hittin",
	"holdin",
	"hollerin",
	"hopin",
	"hoppin",
	"howlin",
	"huggin",
	"hummin",
	"huntin",
	"hurryin",
	"hurtin",
	"joinin",
	"jokin",
	"judgin",
	"jumpin",
	"keepin",
	"kickin",
	"kiddin",
	"killin",
	"kissin",
	"knittin",
	"knockin",
	"knowin",
	"landin",
	"lastin",
	"laughin",
	"layin",
	"leadin",
	"leakin",
	"leanin",
	"leapin",
	"learnin",
	"leavin",
	"lettin",
	"lickin",
	"liftin",
	"lightin",
	"likin",
	"listenin",
	"livin",
	"loadin",
	"lockin",
	"lookin",
	"losin",
	"lovin",
	"lyin",
	"makin",
	"marchin",
	"markin",
	"marryin",
	"meanin",
	"meetin",
	"meltin",
	"mendin",
	"messin",
	"mindin",
	"missin",
	"mixin",
	"moanin",
	"mornin",
	"movin",
	"mumblin",
	"murmurin",
	"naggin",
	"needin",
	"nothin",
	"noticin",
	"offerin",
	"openin",
	"orderin",
	"owin",
	"owlin",
	"packin",
	"paintin",
	"partin",
	"passin",
	"payin",
	"peekin",
	"peepin",
	"pickin",
	"pilin",
	"pitchin",
	"plannin",
	"plantin",
	"playin",
	"pleasin",
	"ploughin",
	"plowin",
	"pointin",
	"pokin",
	"polishin",
	"pourin",
	"prayin",
	"preachin",
	"pressin",
	"pretendin",
	"promisin",
	"provin",
	"pullin",
	"pumpin",
	"punchin",
	"pushin",
	"puttin",
	"racin",
	"railin",
	"rainin",
	"raisin",
	"ramblin",
	"rattlin",
	"reachin",
	"readin",
	"reasonin",
	"reckonin",
	"rememberin",
	"restin",
	"returnin",
	"ridin",
	"ringin",
	"risin",
	"roamin",
	"roarin",
	"robbin",
	"rockin",
	"rollin",
	"rowin",
	"rubbin",
	"runnin",
	"rushin",
	"sailin",
	"savin",
	"sayin",
	"scratchin",
	"screamin",
	"seein",
	"sellin",
	"sendin",
	"settin",
	"settlin",
	"sewin",
	"shakin",
	"sharin",
	"shinin",
	"shiverin",
	"shootin",
	"shoppin",
	"shoutin",
	"showin",
	"shufflin",
	"sighin",
	"singin",
	"sinkin",
	"sittin",
	"skippin",
	"sleepin",
	"slidin",
	"slippin",
	"smellin",
	"smilin",
	"smokin",
	"snappin",
	"sneakin",
	"snorin",
	"soakin",
	"somethin",
	"sobbin",
	"speakin",
	"speedin",
	"spellin",
	"spendin",
	"spillin",
	"spinnin",
	"spittin",
	"splittin",
	"spoilin",
	"sprawlin",
	"springin",
	"squeezin",
	"standin",
	"starin",
	"startin",
	"starvin",
	"stayin",
	"stealin",
	"steamin",
	"steppin",
	"stickin",
	"stingin",
	"stirrin",
	"stompin",
	"stoppin",
	"stretchin",
	"strikin",
	"strugglin",
	"studyin",
	"stumblin",
	"sufferin",
	"swearin",
	"sweatin",
	"sweepin",
	"swimmin",
	"swingin",
	"takin",
	"talkin",
	"teachin",
	"tearin",
	"teasin",
	"tellin",
	"testin",
	"thinkin",
	"throwin",
	"tickin",
	"tippin",
	"tirin",
	"touchin",
	"tradin",
	"trailin",
	"trainin",
	"travelin",
	"tremblin",
	"trottin",
	"trustin",
	"tryin",
	"tumblin",
	"turnin",
	"twistin",
	"understandin",
	"usin",
	"visitin",
	"waitin",
	"wakin",
	"walkin",
	"wanderin",
	"wantin",
	"warmin",
	"warnin",
	"washin",
	"wastin",
	"watchin",
	"wavin",
	"wearin",
	"weavin",
	"weddin",
	"weepin",
	"whinin",
	"whisperin",
	"whistlin",
	"winnin",
	"wipin",
	"wishin",
	"wonderin",
	"workin",
	"worryin",
	"woundin",
	"wrappin",
	"wrestlin",
	"writin",
	"yawnin",
	"yellin",
}
