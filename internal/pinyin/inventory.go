// Package pinyin converts numbered-tone pinyin ("ma3") into tone-marked
// pinyin ("mǎ").
//
// Input text is split on Unicode word boundaries, each word is segmented
// greedily into known syllables, and every syllable carrying a trailing tone
// digit is rewritten with the matching diacritic. Everything else passes
// through unchanged.
package pinyin

import (
	"strconv"
	"strings"
	"sync"
)

// syllableTable lists every base syllable grouped by rhyme family.
// See https://en.wikipedia.org/wiki/Pinyin_table.
var syllableTable = []string{
	"zhi chi shi ri zi ci si",
	"a ba pa ma fa da ta na la ga ka ha zha cha sha za ca sa",
	"e me de te ne le ge ke he zhe che she re ze ce se",
	"ai bai pai mai dai tai nai lai gai kai hai zhai chai shai zai cai sai",
	"ei bei pei mei fei dei tei nei lei gei kei hei zhei shei zei sei",
	"ao bao pao mao dao tao nao lao gao kao hao zhao chao shao rao zao cao sao",
	"ou pou mou fou dou tou nou lou gou kou hou zhou chou shou rou zou cou sou",
	"an ban pan man fan dan tan nan lan gan kan han zhan chan shan ran zan can san",
	"en ben pen men fen den nen gen ken hen zhen chen shen ren zen cen sen",
	"ang bang pang mang fang dang tang nang lang gang kang hang zhang chang shang rang zang cang sang",
	"eng beng peng meng feng deng teng neng leng geng keng heng zheng cheng sheng reng zeng ceng seng",
	"er",
	"yi bi pi mi di ti ni li ji qi xi",
	"ya dia nia lia jia qia xia",
	"yo",
	"ye bie pie mie die tie nie lie jie qie xie",
	"yai",
	"yao biao piao miao fiao diao tiao niao liao jiao qiao xiao",
	"you miu diu niu liu jiu qiu xiu",
	"yan bian pian mian dian tian nian lian jian qian xian",
	"yin bin pin min nin lin jin qin xin",
	"yang biang diang niang liang jiang qiang xiang",
	"ying bing ping ming ding ting ning ling jing qing xing",
	"wu bu pu mu fu du tu nu lu gu ku hu zhu chu shu ru zu cu su",
	"wa gua kua hua zhua chua shua rua",
	"wo bo po mo fo duo tuo nuo luo guo kuo huo zhuo chuo shuo ruo zuo cuo suo",
	"wai guai kuai huai zhuai chuai shuai",
	"wei dui tui gui kui hui zhui chui shui rui zui cui sui",
	"wan duan tuan nuan luan guan kuan huan zhuan chuan shuan ruan zuan cuan suan",
	"wen dun tun nun lun gun kun hun zhun chun shun run zun cun sun",
	"wang guang kuang huang zhuang chuang shuang",
	"weng dong tong nong long gong kong hong zhong chong shong rong zong cong song",
	"yu nü lü ju qu xu",
	"yue nüe lüe jue que xue",
	"yuan juan quan xuan",
	"yun lün jun qun xun",
	"yong jiong qiong xiong",
}

// maxToneDigit is the highest tone digit accepted after a syllable.
const maxToneDigit = 5

// Inventory is the closed set of recognised syllables, with and without a
// trailing tone digit. Keys are lowercase. An Inventory is never modified
// after it is built and may be shared between goroutines.
type Inventory struct {
	set map[string]struct{}
}

// BuildInventory expands the syllable table into a lookup set. Every base
// syllable s contributes s and s followed by each digit 0 through 5.
func BuildInventory() Inventory {
	set := make(map[string]struct{}, 512*(maxToneDigit+2))
	for _, family := range syllableTable {
		for _, s := range strings.Fields(family) {
			set[s] = struct{}{}
			for d := 0; d <= maxToneDigit; d++ {
				set[s+strconv.Itoa(d)] = struct{}{}
			}
		}
	}
	return Inventory{set: set}
}

var defaultInventory = sync.OnceValue(BuildInventory)

// DefaultInventory returns the process-wide inventory, building it on first use.
func DefaultInventory() Inventory {
	return defaultInventory()
}

// Contains reports whether s is a known syllable. The lookup ignores case.
func (inv Inventory) Contains(s string) bool {
	if s == "" {
		return false
	}
	_, ok := inv.set[strings.ToLower(s)]
	return ok
}

// Len returns the number of entries in the inventory.
func (inv Inventory) Len() int {
	return len(inv.set)
}
